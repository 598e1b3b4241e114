// Package payment lists the supporter products sold through the portal.
package payment
