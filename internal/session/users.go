// Test user registry. Users are declared in the session config; their
// on-chain state (nonce, balance) is synced on demand before building
// transactions. Key material and signing stay behind types.Signer.
package session

import (
	"context"
	"fmt"

	"github.com/dukaforge/snippets/pkg/types"
)

// User is one test account participating in the session.
type User struct {
	Name    string
	Address string
	Signer  types.Signer

	// On-chain state, populated by Sync. Not goroutine-safe: a user is
	// owned by one scenario task at a time.
	nonce   uint64
	balance string
}

// Sync refreshes the user's nonce and balance from the network.
func (u *User) Sync(ctx context.Context, provider types.NetworkProvider) error {
	account, err := provider.GetAccount(ctx, u.Address)
	if err != nil {
		return fmt.Errorf("syncing user %s: %w", u.Name, err)
	}
	u.nonce = account.Nonce
	u.balance = account.Balance
	return nil
}

// Nonce returns the last synced account nonce.
func (u *User) Nonce() uint64 {
	return u.nonce
}

// NonceThenIncrement returns the current nonce and locally increments it, so
// that several transactions can be built from one sync.
func (u *User) NonceThenIncrement() uint64 {
	nonce := u.nonce
	u.nonce++
	return nonce
}

// Balance returns the last synced account balance.
func (u *User) Balance() string {
	return u.balance
}

// Users is the registry of all users declared in the session config.
type Users struct {
	all    []*User
	byName map[string]*User
}

// NewUsers builds the registry from config declarations.
func NewUsers(configs []types.UserConfig) (*Users, error) {
	users := &Users{byName: make(map[string]*User, len(configs))}
	for _, config := range configs {
		if config.Name == "" || config.Address == "" {
			return nil, fmt.Errorf("%w: user declarations need both name and address", types.ErrBadSessionConfig)
		}
		if _, exists := users.byName[config.Name]; exists {
			return nil, fmt.Errorf("%w: duplicate user %q", types.ErrBadSessionConfig, config.Name)
		}
		user := &User{Name: config.Name, Address: config.Address}
		users.all = append(users.all, user)
		users.byName[config.Name] = user
	}
	return users, nil
}

// Get returns the user with the given name.
func (u *Users) Get(name string) (*User, error) {
	user, ok := u.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown user %q", name)
	}
	return user, nil
}

// All returns every registered user.
func (u *Users) All() []*User {
	return u.all
}
