package mongo

import "context"

// ResetDefault closes and drops the process-wide provider.
func ResetDefault() {
	defaultMu.Lock()
	p := defaultProvider
	defaultProvider = nil
	defaultMu.Unlock()

	if p != nil {
		_ = p.Close(context.Background())
	}
}
