// Package kernel holds the value objects shared by every aggregate of the
// food delivery domain:
//   - UUID: entity identifiers
//   - Money: non-negative amounts with cent precision, used for prices, fees and totals
//   - GeoPoint: courier positions reported while a delivery is in transit
//
// All of them are immutable and their zero values fail Validate.
package kernel
