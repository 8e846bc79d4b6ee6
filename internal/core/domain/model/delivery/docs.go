// Package delivery implements the delivery aggregate: the record of a courier
// fulfilling one order, with its ASSIGNED / IN_TRANSIT / DELIVERED / FAILED
// state machine and the courier's last reported position.
package delivery
