package dataio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/vmihailenco/msgpack/v5"
)

type codec uint8

const (
	codecYAML codec = iota
	codecJSON
	codecMsgpack
)

func codecFor(path string) (c codec, err error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c = codecYAML
	case ".json":
		c = codecJSON
	case ".msgpack", ".mpk":
		c = codecMsgpack
	default:
		err = fmt.Errorf("%w: %q", ErrFormat, filepath.Ext(path))
	}
	return
}

// FileSource reads a RawDataset from a file, the codec is picked from the
// extension.
type FileSource struct {
	Path string
}

func (fs FileSource) Name() string { return fs.Path }

func (fs FileSource) Load() (raw *RawDataset, err error) {
	var (
		c    codec
		data []byte
	)
	if c, err = codecFor(fs.Path); err != nil {
		return
	}
	if data, err = os.ReadFile(fs.Path); err != nil {
		return
	}
	raw = &RawDataset{}
	switch c {
	case codecYAML, codecJSON:
		// JSON is a subset of YAML
		err = yaml.Unmarshal(data, raw)
	case codecMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		err = dec.Decode(raw)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fs.Path, err)
	}
	return
}

// WriteFile stores raw at path with the codec matching the extension.
func WriteFile(path string, raw *RawDataset) (err error) {
	var (
		c    codec
		file *os.File
	)
	if c, err = codecFor(path); err != nil {
		return
	}
	if file, err = os.Create(path); err != nil {
		return
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	switch c {
	case codecYAML:
		var data []byte
		if data, err = yaml.Marshal(raw); err != nil {
			return
		}
		_, err = file.Write(data)
	case codecJSON:
		err = json.NewEncoder(file).Encode(raw)
	case codecMsgpack:
		enc := msgpack.NewEncoder(file)
		enc.SetCustomStructTag("json")
		err = enc.Encode(raw)
	}
	return
}
