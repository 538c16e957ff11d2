package app

import (
	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	cryptoService "github.com/allisson/envseal/internal/crypto/service"
)

// KeyDeriver returns the password-based key derivation service.
func (c *Container) KeyDeriver() cryptoService.KeyDeriver {
	c.keyDeriverInit.Do(func() {
		c.keyDeriver = cryptoService.NewKeyDeriver()
	})
	return c.keyDeriver
}

// AEADManager returns the AEAD manager service.
func (c *Container) AEADManager() cryptoService.AEADManager {
	c.aeadManagerInit.Do(func() {
		c.aeadManager = cryptoService.NewAEADManager()
	})
	return c.aeadManager
}

// Sealer returns the envelope codec service.
func (c *Container) Sealer() cryptoService.Sealer {
	c.sealerInit.Do(func() {
		c.sealer = cryptoService.NewSealer(c.AEADManager())
	})
	return c.sealer
}

// SessionKeys derives the session key and nonce from the given passwords on
// first access and caches them for the rest of the command. The cached keys
// are zeroed by Shutdown.
func (c *Container) SessionKeys(
	keyPassword, noncePassword string,
	alg cryptoDomain.Algorithm,
) (*cryptoDomain.SessionKeys, error) {
	var err error
	c.sessionKeysInit.Do(func() {
		c.sessionKeys, err = c.KeyDeriver().DeriveSessionKeys(keyPassword, noncePassword, alg)
		if err != nil {
			c.initErrors["sessionKeys"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["sessionKeys"]; exists {
		return nil, storedErr
	}
	return c.sessionKeys, nil
}
