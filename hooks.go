package bytekit

// Hooks lightweight callbacks for high-signal events.
// Implementations MUST be cheap and non-blocking.
type Hooks interface {
	// Digest or FillRandom failed on the host binding.
	// op ∈ {"digest", "fill_random"}
	CapabilityFailed(host, op string, err error)

	// A store entry was deleted on read.
	// reason ∈ {"corrupt", "digest_mismatch", "value_decode"}
	SelfHeal(storageKey, reason string)

	// Provider returned ok=false on Set (backpressure/eviction).
	ProviderSetRejected(storageKey string)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) CapabilityFailed(string, string, error) {}
func (NopHooks) SelfHeal(string, string)                {}
func (NopHooks) ProviderSetRejected(string)             {}
