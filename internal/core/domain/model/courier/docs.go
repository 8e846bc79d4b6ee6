// Package courier models delivery agents and their FREE / BUSY / INACTIVE status.
package courier
