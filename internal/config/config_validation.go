// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/solid-pod/models"
)

// validate checks that the final merged [StructuredConfig] is usable before
// the server starts:
//   - both auth modes are known, and bearer mode has a token;
//   - the pki skew is positive;
//   - the storage driver is known and a sqlite DSN is in-memory;
//   - the API listen address is set.
func (cfg *StructuredConfig) validate() error {
	read, write, err := cfg.Auth.Modes()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAuthConfigs, err)
	}

	if (read == models.AuthModeBearer || write == models.AuthModeBearer) && cfg.Auth.BearerToken == "" {
		return fmt.Errorf("%w: bearer mode requires a token", ErrInvalidAuthConfigs)
	}

	if (read == models.AuthModePKI || write == models.AuthModePKI) && cfg.Auth.PKIMaxSkew <= 0 {
		return fmt.Errorf("%w: pki max skew must be positive", ErrInvalidAuthConfigs)
	}

	switch cfg.Storage.Driver {
	case StorageDriverMemory:
	case StorageDriverSQLite:
		if !isInMemoryDSN(cfg.Storage.DSN) {
			return fmt.Errorf("%w: only in-memory sqlite databases are supported", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}

	if cfg.Server.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: negative body limit", ErrInvalidServerConfigs)
	}

	return nil
}

func isInMemoryDSN(dsn string) bool {
	return dsn == ":memory:" ||
		strings.HasPrefix(dsn, "file::memory:") ||
		strings.Contains(dsn, "mode=memory")
}
