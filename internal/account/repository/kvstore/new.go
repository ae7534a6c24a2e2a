package kvstore

import (
	"fmt"

	"github.com/gorilla/securecookie"

	"smartude/internal/account/repository"
	"smartude/pkg/kv"
	"smartude/pkg/log"
)

// DefaultKey is the kv key the session record is stored under.
const DefaultKey = "smartude-session"

// Config holds the securecookie keys. BlockKey may be empty to sign
// without encrypting.
type Config struct {
	Key      string
	HashKey  []byte
	BlockKey []byte
	MaxAge   int // seconds; 0 disables the age check
}

type implRepository struct {
	store kv.Store
	key   string
	codec *securecookie.SecureCookie
	l     log.Logger
}

var _ repository.SessionStore = (*implRepository)(nil)

// New creates a SessionStore that keeps the session as an authenticated
// (and optionally encrypted) blob in store.
func New(store kv.Store, cfg Config, l log.Logger) repository.SessionStore {
	if store == nil {
		panic("account/repository/kvstore: store is required")
	}
	key := cfg.Key
	if key == "" {
		key = DefaultKey
	}

	blockKey := cfg.BlockKey
	if len(blockKey) == 0 {
		blockKey = nil
	}
	codec := securecookie.New(cfg.HashKey, blockKey)
	codec.SetSerializer(securecookie.JSONEncoder{})
	codec.MaxAge(cfg.MaxAge)
	// stored blobs are not bound by cookie size limits
	codec.MaxLength(0)

	return &implRepository{store: store, key: key, codec: codec, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("account/repository/kvstore.%s", method)
}
