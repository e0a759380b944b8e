// Package middleware decorates a ports.TranslationVendor with caching, locking
// and instrumentation.
package middleware

import "github.com/aretw0/scriptsync/pkg/ports"

// Middleware allows wrapping a TranslationVendor to add behavior.
type Middleware func(ports.TranslationVendor) ports.TranslationVendor

// Chain applies mws so that the first one is the outermost.
func Chain(vendor ports.TranslationVendor, mws ...Middleware) ports.TranslationVendor {
	for i := len(mws) - 1; i >= 0; i-- {
		vendor = mws[i](vendor)
	}
	return vendor
}
