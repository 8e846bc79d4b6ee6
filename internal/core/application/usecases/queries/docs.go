// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Handlers run plain SQL through gorm and return read models shaped for the API;
// they never load aggregates.
//
// Visibility rules shared by order and delivery queries:
//   - ADMIN sees everything
//   - CLIENTE sees the orders it placed
//   - RESTAURANTE sees the orders placed with restaurants it owns
//   - REPARTIDOR sees the deliveries assigned to its courier and their orders
package queries
