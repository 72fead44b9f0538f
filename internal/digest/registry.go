package digest

import (
	"sort"

	"github.com/mrz1836/signet/internal/errors"
)

// ProviderSHA256 is the name of the in-process provider.
const ProviderSHA256 = "sha256"

// providers maps configuration names to provider constructors.
//
//nolint:gochecknoglobals // Static registry
var providers = map[string]func() Provider{
	ProviderSHA256: func() Provider { return SHA256Provider{} },
}

// ProviderByName returns the provider registered under name.
func ProviderByName(name string) (Provider, error) {
	newProvider, ok := providers[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownDigestProvider, "%q (available: %v)", name, ProviderNames())
	}
	return newProvider(), nil
}

// ProviderNames returns the registered provider names, sorted.
func ProviderNames() []string {
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
