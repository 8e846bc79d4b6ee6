// Package account models registered users and the Principal they act as.
package account
