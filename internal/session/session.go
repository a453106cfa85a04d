// Package session orchestrates one named test run: it owns the network
// provider handle, the user registry, the persistent store, and the
// convenience helpers that translate typed domain values into breadcrumbs
// and back. The store is the single source of truth read back by the report
// generator at the end of a run.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dukaforge/snippets/internal/network"
	"github.com/dukaforge/snippets/internal/paths"
	"github.com/dukaforge/snippets/internal/report"
	"github.com/dukaforge/snippets/internal/snapshots"
	"github.com/dukaforge/snippets/internal/sqlite"
	"github.com/dukaforge/snippets/pkg/types"
)

// Session is one named test run. The session name doubles as the scope
// partitioning all records in the store.
type Session struct {
	name          string
	correlation   string
	config        *types.SessionConfig
	provider      types.NetworkProvider
	users         *Users
	storage       types.Storage
	snapshots     *snapshots.Service
	log           *EventLog
	networkConfig *types.NetworkConfig
}

// Load locates the session config (in folder, then its parent), constructs
// the network provider it declares, opens or creates the store next to the
// config file, and returns a ready session.
func Load(sessionID, folder string) (*Session, error) {
	configFile, err := paths.ResolveSessionConfig(sessionID, folder)
	if err != nil {
		return nil, err
	}

	config, err := loadConfig(configFile)
	if err != nil {
		return nil, err
	}

	provider, err := network.NewProvider(config.NetworkProvider)
	if err != nil {
		return nil, err
	}

	users, err := NewUsers(config.Users)
	if err != nil {
		return nil, err
	}

	storage, err := sqlite.Open(paths.StorageFile(configFile, sessionID))
	if err != nil {
		return nil, err
	}

	correlation := uuid.NewString()
	session := &Session{
		name:        sessionID,
		correlation: correlation,
		config:      config,
		provider:    provider,
		users:       users,
		storage:     storage,
		snapshots:   snapshots.NewService(provider, storage, sessionID, correlation),
		log:         NewEventLog(storage, sessionID, correlation),
	}

	slog.Info("session loaded", "session", sessionID, "config", configFile, "provider", config.NetworkProvider.Type)
	return session, nil
}

// Name returns the session name, which is also the store scope.
func (s *Session) Name() string { return s.name }

// CorrelationTag returns the tag identifying this run of the session.
func (s *Session) CorrelationTag() string { return s.correlation }

// Provider returns the chain-client handle.
func (s *Session) Provider() types.NetworkProvider { return s.provider }

// Users returns the registry of configured test users.
func (s *Session) Users() *Users { return s.users }

// Storage returns the session store.
func (s *Session) Storage() types.Storage { return s.storage }

// Snapshots returns the account snapshot service.
func (s *Session) Snapshots() *snapshots.Service { return s.snapshots }

// Log returns the session event log.
func (s *Session) Log() *EventLog { return s.log }

// SyncNetworkConfig refreshes the cached network parameters. It must be
// called before building any transaction that needs them; the result stays
// cached until the next call.
func (s *Session) SyncNetworkConfig(ctx context.Context) error {
	config, err := s.provider.GetNetworkConfig(ctx)
	if err != nil {
		return err
	}
	s.networkConfig = config
	slog.Info("network config synced", "session", s.name, "chainID", config.ChainID)
	return nil
}

// NetworkConfig returns the cached network parameters. There is no implicit
// default: before the first SyncNetworkConfig it fails with
// ErrNetworkConfigNotSynced so callers cannot build against a zero value.
func (s *Session) NetworkConfig() (*types.NetworkConfig, error) {
	if s.networkConfig == nil {
		return nil, types.ErrNetworkConfigNotSynced
	}
	return s.networkConfig, nil
}

// SyncUsers refreshes each user's on-chain state, one concurrent sync per
// user, and waits for all to finish. The first failure is surfaced; the sync
// happens entirely before any store write, so a failure cannot corrupt the
// store.
func (s *Session) SyncUsers(ctx context.Context, users []*User) error {
	errs := make(chan error, len(users))
	for _, user := range users {
		go func(user *User) {
			errs <- user.Sync(ctx, s.provider)
		}(user)
	}

	var firstErr error
	for range users {
		if err := <-errs; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// SaveAddress stores an address under the given name.
func (s *Session) SaveAddress(name, address string) error {
	slog.Info("save address", "session", s.name, "name", name, "address", address)
	return s.storage.UpsertBreadcrumb(s.name, name, types.BreadcrumbTypeAddress, address)
}

// LoadAddress returns the address saved under the given name. A breadcrumb
// of another shape fails here, at decode time.
func (s *Session) LoadAddress(name string) (string, error) {
	record, err := s.storage.GetBreadcrumb(s.name, name)
	if err != nil {
		return "", err
	}
	address, ok := record.Payload.(string)
	if !ok {
		return "", fmt.Errorf("breadcrumb %s does not decode to an address", name)
	}
	return address, nil
}

// SaveToken stores a token descriptor under the given name.
func (s *Session) SaveToken(name string, token types.Token) error {
	slog.Info("save token", "session", s.name, "name", name, "token", token.Identifier)
	return s.storage.UpsertBreadcrumb(s.name, name, types.BreadcrumbTypeToken, token)
}

// LoadToken returns the token descriptor saved under the given name.
func (s *Session) LoadToken(name string) (types.Token, error) {
	record, err := s.storage.GetBreadcrumb(s.name, name)
	if err != nil {
		return types.Token{}, err
	}
	var token types.Token
	if err := decodePayload(record.Payload, &token); err != nil {
		return types.Token{}, fmt.Errorf("breadcrumb %s does not decode to a token: %w", name, err)
	}
	return token, nil
}

// SaveBreadcrumb stores an arbitrary value under the given name. An empty
// breadcrumbType defaults to the arbitrary tag.
func (s *Session) SaveBreadcrumb(name, breadcrumbType string, value any) error {
	if breadcrumbType == "" {
		breadcrumbType = types.BreadcrumbTypeArbitrary
	}
	slog.Info("save breadcrumb", "session", s.name, "name", name, "type", breadcrumbType)
	return s.storage.UpsertBreadcrumb(s.name, name, breadcrumbType, value)
}

// LoadBreadcrumb returns the payload saved under the given name.
func (s *Session) LoadBreadcrumb(name string) (any, error) {
	record, err := s.storage.GetBreadcrumb(s.name, name)
	if err != nil {
		return nil, err
	}
	return record.Payload, nil
}

// LoadBreadcrumbsByType returns the payloads of all breadcrumbs with the
// given type tag.
func (s *Session) LoadBreadcrumbsByType(breadcrumbType string) ([]any, error) {
	records, err := s.storage.ListBreadcrumbsByType(s.name, breadcrumbType)
	if err != nil {
		return nil, err
	}
	payloads := make([]any, len(records))
	for i, record := range records {
		payloads[i] = record.Payload
	}
	return payloads, nil
}

// GenerateReport renders the session summary and record exports into the
// configured reporting folder. Read-only over the store.
func (s *Session) GenerateReport(tag string) (string, error) {
	generator := report.NewGenerator(s.config.Reporting, s.storage, s.name)
	return generator.Generate(tag)
}

// Destroy tears down the persistent store, deleting the backing file. The
// session is unusable afterwards: every further store-backed call fails
// fast with ErrStoreClosed.
func (s *Session) Destroy() error {
	slog.Info("session destroyed", "session", s.name)
	return s.storage.Destroy()
}

// decodePayload re-marshals a decoded payload into a caller-supplied shape.
// This is the one boundary where schema-less store payloads regain a type.
func decodePayload(payload, dest any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}
