package catalog

import (
	"fmt"

	enc "github.com/named-data/ndnd/std/encoding"
	"github.com/named-data/ndnd/std/ndn"
	"github.com/named-data/ndnd/std/security/keychain"
)

// newSigner resolves the configured signing identity to an ndn.Signer,
// mirroring query-adapter.hpp::signData's lookup of the identity's
// default key and default certificate. The identity is resolved once
// at startup: spec.md §6 makes signingId mandatory, so there is no
// per-run fallback to an unconfigured default key here (unlike the
// source, which falls back when m_signingId is empty).
func newSigner(kc ndn.KeyChain, identityName enc.Name) (ndn.Signer, error) {
	identity := kc.GetIdentity(identityName)
	if identity == nil {
		return nil, fmt.Errorf("signing identity %s not found in keychain", identityName)
	}

	signer := identity.Signer()
	if signer == nil {
		return nil, fmt.Errorf("signing identity %s has no usable key", identityName)
	}

	return signer, nil
}

// openKeyChain opens the keychain named by uri, using store as the
// backing public-data store for certificates, the same signature
// keychain.NewKeyChain expects in dv/dv/router.go.
func openKeyChain(uri string, store ndn.Store) (ndn.KeyChain, error) {
	return keychain.NewKeyChain(uri, store)
}
