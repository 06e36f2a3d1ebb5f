package dal

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/subosito/gotenv"
)

const DefaultSubscribersKey = "TELEGRAM_CHAT_ID"

// EnvFile keeps subscribers in an env-style text file as a single KEY=id1,id2 line.
// Other keys of the file are kept as is on save.
type EnvFile struct {
	path string
	key  string
}

func NewEnvFile(path, key string) *EnvFile {
	if key == "" {
		key = DefaultSubscribersKey
	}
	return &EnvFile{path: path, key: key}
}

func (f *EnvFile) Path() string {
	return f.path
}

func (f *EnvFile) LoadSubscribers() (SubscriberSet, error) {
	env, err := f.read()
	if err != nil {
		return nil, err
	}
	return ParseSubscribers(env[f.key])
}

func (f *EnvFile) SaveSubscribers(s SubscriberSet) error {
	// an unparsable file is left as is, it may hold keys other than ours
	env, err := f.read()
	if err != nil {
		return err
	}
	env[f.key] = FormatSubscribers(s)

	if err := writeFileAtomic(f.path, marshalEnv(env)); err != nil {
		return fmt.Errorf("write subscribers file %s: %w", f.path, err)
	}
	return nil
}

func (f *EnvFile) read() (gotenv.Env, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return gotenv.Env{}, nil
		}
		return nil, fmt.Errorf("read subscribers file %s: %w", f.path, err)
	}

	env, err := gotenv.StrictParse(bytes.NewReader(data))
	if err != nil {
		return nil, &MalformedStoreError{Entry: f.path, Err: err}
	}
	if env == nil {
		env = gotenv.Env{}
	}
	return env, nil
}

func marshalEnv(env gotenv.Env) []byte {
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		buf.WriteString(k)
		buf.WriteByte('=')
		buf.WriteString(quoteEnvValue(env[k]))
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

func quoteEnvValue(v string) string {
	if v == "" || !strings.ContainsAny(v, " \t\n\r\"'#$\\") {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`, `$`, `\$`)
	return `"` + r.Replace(v) + `"`
}

// writeFileAtomic writes into a temp file next to path and renames it over path,
// so a crash never leaves a half written file behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	tmp = nil

	if err := os.Chmod(tmpName, 0o600); err != nil { //nolint:mnd
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
