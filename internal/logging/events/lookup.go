package events

import "github.com/atomicstack/pincode-lookup/internal/logging"

type LookupTracer struct{}

var Lookup = LookupTracer{}

func (LookupTracer) Start(id, pincode string) {
	logging.Trace("lookup.start", map[string]interface{}{"id": id, "pincode": pincode})
}

func (LookupTracer) Invalid(pincode string) {
	logging.Trace("lookup.invalid", map[string]interface{}{"pincode": pincode})
}

func (LookupTracer) Success(id, pincode string, count int, cached bool) {
	logging.Trace("lookup.success", map[string]interface{}{
		"id":      id,
		"pincode": pincode,
		"count":   count,
		"cached":  cached,
	})
}

func (LookupTracer) CacheHit(pincode string) {
	logging.Trace("lookup.cache-hit", map[string]interface{}{"pincode": pincode})
}

func (LookupTracer) Error(id, pincode string, err error) {
	if err == nil {
		return
	}
	logging.Trace("lookup.error", map[string]interface{}{"id": id, "pincode": pincode, "error": err.Error()})
}

// Stale records a result that arrived after a newer lookup replaced it.
func (LookupTracer) Stale(id, pending string) {
	logging.Trace("lookup.stale", map[string]interface{}{"id": id, "pending": pending})
}
