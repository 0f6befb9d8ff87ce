package identity

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"efectivio/internal/domain/entities"
	"efectivio/internal/usecase/interfaces"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
)

const (
	bucketDevUsers    = "dev_users"
	bucketDevSessions = "dev_sessions"

	devSessionTTL = 12 * time.Hour
)

type devUser struct {
	ExternalID   string `json:"external_id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
}

type devSession struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DevProvider is a local stand-in for the hosted identity provider. Users
// and opaque session tokens live in a bbolt file.
type DevProvider struct {
	db     *bolt.DB
	hasher interfaces.IPasswordHasher
	now    func() time.Time
}

var _ interfaces.IIdentityProvider = (*DevProvider)(nil)

func NewDevProvider(path string, hasher interfaces.IPasswordHasher) (*DevProvider, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open dev identity store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range []string{bucketDevUsers, bucketDevSessions} {
			if _, err := tx.CreateBucketIfNotExists([]byte(bucket)); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Printf("[auth][dev] identity store opened path=%s", path)
	return &DevProvider{db: db, hasher: hasher, now: time.Now}, nil
}

func (p *DevProvider) Close() error {
	return p.db.Close()
}

func (p *DevProvider) Name() string { return "dev" }

func (p *DevProvider) SignUp(_ context.Context, in entities.SignUpInput) (entities.AuthSession, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	hash, err := p.hasher.Hash(in.Password)
	if err != nil {
		return entities.AuthSession{}, err
	}
	u := devUser{
		ExternalID:   "dev_" + uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
	}

	var session entities.AuthSession
	err = p.db.Update(func(tx *bolt.Tx) error {
		users := tx.Bucket([]byte(bucketDevUsers))
		if users.Get([]byte(email)) != nil {
			return interfaces.ErrIdentityExists
		}
		data, err := json.Marshal(u)
		if err != nil {
			return err
		}
		if err := users.Put([]byte(email), data); err != nil {
			return err
		}
		session, err = p.openSession(tx, u)
		return err
	})
	if err != nil {
		return entities.AuthSession{}, err
	}
	return session, nil
}

func (p *DevProvider) SignIn(_ context.Context, email, password string) (entities.AuthSession, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var session entities.AuthSession
	err := p.db.Update(func(tx *bolt.Tx) error {
		u, err := getDevUser(tx, email)
		if err != nil {
			return err
		}
		if !p.hasher.Compare(u.PasswordHash, password) {
			return interfaces.ErrInvalidCredentials
		}
		session, err = p.openSession(tx, u)
		return err
	})
	if errors.Is(err, errDevUserMissing) {
		return entities.AuthSession{}, interfaces.ErrInvalidCredentials
	}
	if err != nil {
		return entities.AuthSession{}, err
	}
	return session, nil
}

func (p *DevProvider) VerifyToken(_ context.Context, token string) (entities.Identity, error) {
	var id entities.Identity
	err := p.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketDevSessions)).Get([]byte(token))
		if raw == nil {
			return interfaces.ErrInvalidToken
		}
		var s devSession
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		if p.now().After(s.ExpiresAt) {
			return interfaces.ErrInvalidToken
		}
		u, err := getDevUser(tx, s.Email)
		if err != nil {
			return interfaces.ErrInvalidToken
		}
		id = u.identity()
		return nil
	})
	return id, err
}

func (p *DevProvider) SignOut(_ context.Context, token string) error {
	return p.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketDevSessions)).Delete([]byte(token))
	})
}

func (p *DevProvider) openSession(tx *bolt.Tx, u devUser) (entities.AuthSession, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return entities.AuthSession{}, err
	}
	token := hex.EncodeToString(buf)
	s := devSession{Email: u.Email, ExpiresAt: p.now().Add(devSessionTTL).UTC()}

	data, err := json.Marshal(s)
	if err != nil {
		return entities.AuthSession{}, err
	}
	if err := tx.Bucket([]byte(bucketDevSessions)).Put([]byte(token), data); err != nil {
		return entities.AuthSession{}, err
	}
	return entities.AuthSession{Token: token, ExpiresAt: s.ExpiresAt, Identity: u.identity()}, nil
}

var errDevUserMissing = errors.New("dev user not found")

func getDevUser(tx *bolt.Tx, email string) (devUser, error) {
	raw := tx.Bucket([]byte(bucketDevUsers)).Get([]byte(email))
	if raw == nil {
		return devUser{}, errDevUserMissing
	}
	var u devUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return devUser{}, err
	}
	return u, nil
}

func (u devUser) identity() entities.Identity {
	return entities.Identity{
		ExternalID: u.ExternalID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
	}
}
