// Package main provides the entry point of the North Supermart storefront API.
// It runs a fiber web server exposing the product catalog, signup and login,
// contact messages and checkout, plus the back-office endpoints for
// products, orders, messages, dashboard stats and store settings. Data is
// kept in MySQL, PostgreSQL or SQLite through gorm; product images are
// stored on local disk and placed orders can be published to Kafka.
package main
