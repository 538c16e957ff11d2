package usecase

import (
	"fmt"
	"sort"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
	cryptoService "github.com/allisson/envseal/internal/crypto/service"
	envfileDomain "github.com/allisson/envseal/internal/envfile/domain"
)

type envUseCase struct {
	fileStore  FileStore
	processEnv ProcessEnv
	sealer     cryptoService.Sealer
}

// NewEnvUseCase creates the environment-value pipeline with its collaborators:
// the durable file store, the process environment, and the envelope sealer.
func NewEnvUseCase(
	fileStore FileStore,
	processEnv ProcessEnv,
	sealer cryptoService.Sealer,
) EnvUseCase {
	return &envUseCase{
		fileStore:  fileStore,
		processEnv: processEnv,
		sealer:     sealer,
	}
}

func (e *envUseCase) SetEncrypted(
	name, plaintext string,
	keys *cryptoDomain.SessionKeys,
) error {
	entries, err := e.fileStore.Read()
	if err != nil {
		return fmt.Errorf("failed to read env file: %w", err)
	}

	if _, exists := entries[name]; exists {
		return fmt.Errorf("%w: %s", envfileDomain.ErrEntryExists, name)
	}

	return e.ForceSetEncrypted(name, plaintext, keys)
}

func (e *envUseCase) ForceSetEncrypted(
	name, plaintext string,
	keys *cryptoDomain.SessionKeys,
) error {
	entry := envfileDomain.Entry{Name: name, Value: plaintext}
	if err := entry.Validate(); err != nil {
		return err
	}

	sealed, err := e.sealer.Seal(keys.Algorithm, keys.Key, keys.Nonce, plaintext)
	if err != nil {
		return err
	}

	if err := e.fileStore.Upsert(name, sealed); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}

	return nil
}

func (e *envUseCase) GetEncrypted(
	name string,
	keys *cryptoDomain.SessionKeys,
) (string, error) {
	entries, err := e.fileStore.Read()
	if err != nil {
		return "", fmt.Errorf("failed to read env file: %w", err)
	}

	value, exists := entries[name]
	if !exists {
		return "", fmt.Errorf("%w: %s", envfileDomain.ErrEntryNotFound, name)
	}

	// Plaintext entries are returned as-is
	if !cryptoDomain.IsSealed(value) {
		return value, nil
	}

	return e.sealer.Open(keys.Algorithm, keys.Key, keys.Nonce, value)
}

func (e *envUseCase) DecryptAll(
	entries map[string]string,
	keys *cryptoDomain.SessionKeys,
) map[string]EntryResult {
	results := make(map[string]EntryResult, len(entries))

	for name, value := range entries {
		if !cryptoDomain.IsSealed(value) {
			results[name] = EntryResult{Plaintext: value}
			continue
		}

		plaintext, err := e.sealer.Open(keys.Algorithm, keys.Key, keys.Nonce, value)
		if err != nil {
			// The raw envelope text is never surfaced as a plaintext result
			results[name] = EntryResult{Err: err}
			continue
		}

		results[name] = EntryResult{Plaintext: plaintext}
	}

	return results
}

func (e *envUseCase) Load(keys *cryptoDomain.SessionKeys) (*LoadReport, error) {
	entries, err := e.fileStore.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	report := &LoadReport{Failed: make(map[string]error)}

	for name, value := range entries {
		sealed := cryptoDomain.IsSealed(value)

		plaintext := value
		if sealed {
			plaintext, err = e.sealer.Open(keys.Algorithm, keys.Key, keys.Nonce, value)
			if err != nil {
				report.Failed[name] = err
				continue
			}
		}

		if err := e.processEnv.Set(name, plaintext); err != nil {
			report.Failed[name] = err
			continue
		}

		if sealed {
			report.Applied = append(report.Applied, name)
		} else {
			report.Passthrough = append(report.Passthrough, name)
		}
	}

	sort.Strings(report.Applied)
	sort.Strings(report.Passthrough)
	return report, nil
}

func (e *envUseCase) GetPlain(name string) (string, bool) {
	return e.processEnv.Lookup(name)
}

func (e *envUseCase) Status() ([]StatusEntry, error) {
	entries, err := e.fileStore.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	status := make([]StatusEntry, 0, len(entries))
	for _, name := range names {
		value := entries[name]

		entry := StatusEntry{Name: name, Sealed: cryptoDomain.IsSealed(value)}
		if entry.Sealed {
			if sv, err := cryptoDomain.ParseSealedValue(value); err == nil {
				entry.Algorithm = sv.Algorithm
			}
		}
		status = append(status, entry)
	}

	return status, nil
}

func (e *envUseCase) Rekey(oldKeys, newKeys *cryptoDomain.SessionKeys) (*RekeyReport, error) {
	entries, err := e.fileStore.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read env file: %w", err)
	}

	report := &RekeyReport{}
	rewritten := make(map[string]string, len(entries))

	// Every sealed entry must open before the file is touched, so a wrong
	// password can never leave the file half rekeyed.
	for name, value := range entries {
		if !cryptoDomain.IsSealed(value) {
			rewritten[name] = value
			report.Passthrough = append(report.Passthrough, name)
			continue
		}

		plaintext, err := e.sealer.Open(oldKeys.Algorithm, oldKeys.Key, oldKeys.Nonce, value)
		if err != nil {
			return nil, fmt.Errorf("failed to open entry %s: %w", name, err)
		}

		resealed, err := e.sealer.Seal(newKeys.Algorithm, newKeys.Key, newKeys.Nonce, plaintext)
		if err != nil {
			return nil, fmt.Errorf("failed to reseal entry %s: %w", name, err)
		}

		rewritten[name] = resealed
		report.Resealed = append(report.Resealed, name)
	}

	if err := e.fileStore.WriteAll(rewritten); err != nil {
		return nil, fmt.Errorf("failed to rewrite env file: %w", err)
	}

	sort.Strings(report.Resealed)
	sort.Strings(report.Passthrough)
	return report, nil
}
