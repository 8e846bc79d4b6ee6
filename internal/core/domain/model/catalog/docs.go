// Package catalog contains the reference data orders are built from:
// restaurants, menu categories and menu items.
package catalog
