// Package services provides domain services that coordinate business operations
// spanning more than one aggregate of the food delivery system.
//
// The package includes:
//   - Fulfillment: drives an order and its delivery through their coupled state
//     machines and applies the explicit courier status steps
//   - AccessPolicy: ownership rules deciding which principal may act on a
//     restaurant, order, delivery or rating
//
// Services here never touch storage. Command handlers load the aggregates,
// pass them in and persist whatever the service changed in one unit of work.
package services
