package keymap

import (
	"encoding/json"
	"os"

	"github.com/leiserfg/rmk-piantor/pkg/errors"
)

// Vial is the auxiliary metadata document. Its schema belongs to Vial;
// the generator loads it whole and only reports its presence, so the
// content stays an opaque key-value map.
type Vial map[string]any

// LoadVial reads and decodes the Vial document at path.
//
// A missing file yields ErrCodeFileNotFound, malformed JSON yields
// ErrCodeInvalidConfig.
func LoadVial(path string) (Vial, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "vial file %s does not exist", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "reading vial file %s", path)
	}

	var v Vial
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decoding vial file %s", path)
	}
	return v, nil
}
