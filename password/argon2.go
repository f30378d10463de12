package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	minMemoryKB    uint32 = 8 * 1024
	minTimeCost    uint32 = 1
	minParallelism uint8  = 1
	argonSaltLen   uint32 = 16
	argonKeyLen    uint32 = 32
	algorithmID           = "argon2id"
)

// Argon2Params tunes the argon2id derivation.
type Argon2Params struct {
	Memory      uint32 // KB
	Time        uint32
	Parallelism uint8
}

// DefaultArgon2Params returns interactive-login parameters.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{Memory: 65536, Time: 3, Parallelism: 2}
}

// Argon2 is an argon2id [Hasher] producing PHC-formatted credentials. It
// also verifies legacy "salt:hash" records so accounts created under
// [SaltedSHA256] keep authenticating during a migration, and flags them for
// re-hashing via [Argon2.NeedsUpgrade].
type Argon2 struct {
	params Argon2Params
	legacy SaltedSHA256
	dummy  string
}

// NewArgon2 validates params and returns an argon2id hasher.
func NewArgon2(params Argon2Params) (*Argon2, error) {
	if params.Memory < minMemoryKB {
		return nil, errors.New("argon2 memory must be >= 8192 KB")
	}
	if params.Time < minTimeCost {
		return nil, errors.New("argon2 time must be >= 1")
	}
	if params.Parallelism < minParallelism {
		return nil, errors.New("argon2 parallelism must be >= 1")
	}
	a := &Argon2{params: params}

	// A PHC credential whose key is all zeros: verifying against it runs
	// the full derivation at this hasher's parameters and can never match.
	a.dummy = fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		params.Memory,
		params.Time,
		params.Parallelism,
		base64.StdEncoding.EncodeToString(make([]byte, argonSaltLen)),
		base64.StdEncoding.EncodeToString(make([]byte, argonKeyLen)),
	)
	return a, nil
}

// Dummy returns a decoy PHC credential that costs a full argon2id
// derivation to reject.
func (a *Argon2) Dummy() string {
	return a.dummy
}

// Hash derives a PHC-formatted argon2id credential with a fresh salt.
func (a *Argon2) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}

	key := argon2.IDKey([]byte(password), salt, a.params.Time, a.params.Memory, a.params.Parallelism, argonKeyLen)

	return fmt.Sprintf(
		"$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		algorithmID,
		argon2.Version,
		a.params.Memory,
		a.params.Time,
		a.params.Parallelism,
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(key),
	), nil
}

// Verify checks password against a PHC argon2id credential, or against a
// legacy "salt:hash" record when stored is not PHC-formatted.
func (a *Argon2) Verify(password, stored string) bool {
	if !strings.HasPrefix(stored, "$") {
		return a.legacy.Verify(password, stored)
	}

	parsed, err := parsePHC(stored)
	if err != nil {
		return false
	}

	computed := argon2.IDKey([]byte(password), parsed.salt, parsed.time, parsed.memory, parsed.parallelism, uint32(len(parsed.key)))
	return subtle.ConstantTimeCompare(computed, parsed.key) == 1
}

// NeedsUpgrade reports whether stored was produced with weaker parameters
// than this hasher's, or with the legacy salted-SHA256 scheme.
func (a *Argon2) NeedsUpgrade(stored string) bool {
	if !strings.HasPrefix(stored, "$") {
		return true
	}
	parsed, err := parsePHC(stored)
	if err != nil {
		return false
	}
	return a.params.Memory > parsed.memory ||
		a.params.Time > parsed.time ||
		a.params.Parallelism > parsed.parallelism
}

type parsedPHC struct {
	memory      uint32
	time        uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

func parsePHC(stored string) (*parsedPHC, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != algorithmID {
		return nil, errors.New("invalid PHC format")
	}

	version, err := strconv.Atoi(strings.TrimPrefix(parts[2], "v="))
	if err != nil || version != argon2.Version {
		return nil, errors.New("unsupported argon2 version")
	}

	out := &parsedPHC{}
	for _, pair := range strings.Split(parts[3], ",") {
		k, v, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, errors.New("invalid parameter entry")
		}
		switch k {
		case "m":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return nil, errors.New("invalid memory parameter")
			}
			out.memory = uint32(n)
		case "t":
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return nil, errors.New("invalid time parameter")
			}
			out.time = uint32(n)
		case "p":
			n, err := strconv.ParseUint(v, 10, 8)
			if err != nil {
				return nil, errors.New("invalid parallelism parameter")
			}
			out.parallelism = uint8(n)
		default:
			return nil, errors.New("unsupported parameter")
		}
	}
	if out.memory == 0 || out.time == 0 || out.parallelism == 0 {
		return nil, errors.New("missing parameters")
	}

	if out.salt, err = base64.StdEncoding.DecodeString(parts[4]); err != nil || len(out.salt) == 0 {
		return nil, errors.New("invalid salt encoding")
	}
	if out.key, err = base64.StdEncoding.DecodeString(parts[5]); err != nil || len(out.key) == 0 {
		return nil, errors.New("invalid hash encoding")
	}

	return out, nil
}
