package storage

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"efectivio/internal/infrastructure/config"
	"efectivio/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// DownloadPath is where the HTTP layer serves objects of the local driver.
const DownloadPath = "/api/files/download/"

var (
	ErrInvalidSignature = errors.New("invalid download signature")
	ErrLinkExpired      = errors.New("download link expired")
)

// LocalStorage keeps objects on disk. Signed URLs point at DownloadPath and
// carry an HMAC over the encoded key and the expiry.
type LocalStorage struct {
	root    string
	baseURL string
	key     []byte
	now     func() time.Time
}

var _ interfaces.IObjectStorage = (*LocalStorage)(nil)

func NewLocalStorage(cfg config.StorageConfig) (*LocalStorage, error) {
	root, err := filepath.Abs(cfg.LocalDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	log.Printf("[storage][local] root=%s", root)
	return &LocalStorage{
		root:    root,
		baseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		key:     []byte(cfg.LocalSignKey),
		now:     time.Now,
	}, nil
}

func (s *LocalStorage) Put(_ context.Context, key string, _ string, body io.Reader, _ int64) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}

	f, err := os.Create(p)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		_ = os.Remove(p)
		return err
	}
	return f.Close()
}

func (s *LocalStorage) Delete(_ context.Context, key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(p)
	if errors.Is(err, os.ErrNotExist) {
		return interfaces.ErrObjectNotFound
	}
	return err
}

func (s *LocalStorage) SignedURL(_ context.Context, key string, ttl time.Duration) (string, error) {
	if _, err := s.path(key); err != nil {
		return "", err
	}
	token := base64.RawURLEncoding.EncodeToString([]byte(key))
	expires := strconv.FormatInt(s.now().Add(ttl).Unix(), 10)

	q := url.Values{}
	q.Set("expires", expires)
	q.Set("signature", s.sign(token, expires))
	return s.baseURL + DownloadPath + token + "?" + q.Encode(), nil
}

// Open checks a download link produced by SignedURL and opens the object.
// It returns the base name of the stored object.
func (s *LocalStorage) Open(token, expires, signature string) (*os.File, string, error) {
	if !hmac.Equal([]byte(s.sign(token, expires)), []byte(signature)) {
		return nil, "", ErrInvalidSignature
	}
	exp, err := strconv.ParseInt(expires, 10, 64)
	if err != nil {
		return nil, "", ErrInvalidSignature
	}
	if s.now().Unix() > exp {
		return nil, "", ErrLinkExpired
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, "", ErrInvalidSignature
	}
	p, err := s.path(string(raw))
	if err != nil {
		return nil, "", err
	}
	f, err := os.Open(p)
	if errors.Is(err, os.ErrNotExist) {
		return nil, "", interfaces.ErrObjectNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return f, filepath.Base(p), nil
}

func (s *LocalStorage) sign(token, expires string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(token + "." + expires))
	return hex.EncodeToString(mac.Sum(nil))
}

// path maps a key under root and refuses keys that escape it.
func (s *LocalStorage) path(key string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash("/" + key))
	p := filepath.Join(s.root, clean)
	if p == s.root || !strings.HasPrefix(p, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid object key %q", key)
	}
	return p, nil
}
