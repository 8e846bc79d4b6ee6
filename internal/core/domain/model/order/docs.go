// Package order implements the order aggregate and its lifecycle state machine.
//
// An order is placed PENDING and advanced by its restaurant through CONFIRMED,
// PREPARING and READY. Its delivery then moves it to IN_TRANSIT and DELIVERED.
// It can be cancelled at any point before DELIVERED. Every transition records a
// StatusChangedEvent that is published once the surrounding unit of work commits.
package order
