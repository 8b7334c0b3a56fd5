package matrices

import (
	"encoding/gob"
	"os"

	"github.com/gomlx/matrices/pkg/core/shapes"
	"github.com/gomlx/matrices/pkg/support/fsutil"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// gobSerializeBuffer writes the shape header followed by the flat data.
func gobSerializeBuffer[T any](name string, b *buffer[T], encoder *gob.Encoder) error {
	if err := b.shape.GobSerialize(encoder); err != nil {
		return errors.WithMessagef(err, "serializing %s shape header", name)
	}
	if err := encoder.Encode(b.flat); err != nil {
		return errors.Wrapf(err, "failed to write %s data", name)
	}
	return nil
}

// gobDeserializeBuffer reads a shape header plus flat data, validating both
// against the descriptor.
func gobDeserializeBuffer[T any](spec typeSpec, decoder *gob.Decoder) ([]T, error) {
	shape, err := shapes.GobDeserialize(decoder)
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to deserialize %s shape header", spec.name)
	}
	if !shape.Equal(spec.shape) {
		return nil, errors.Errorf("stored shape %s does not match type %s with shape %s",
			shape, spec.name, spec.shape)
	}
	var flat []T
	if err = decoder.Decode(&flat); err != nil {
		return nil, errors.Wrapf(err, "failed to deserialize %s data", spec.name)
	}
	if len(flat) != spec.Size() {
		return nil, errors.Errorf("stored %s data has %d elements, want %d",
			spec.name, len(flat), spec.Size())
	}
	return flat, nil
}

// saveToFile creates filePath (a leading "~" is expanded) and streams one
// gob-encoded instance into it.
func saveToFile(filePath, name string, serialize func(*gob.Encoder) error) error {
	filePath, err := fsutil.ReplaceTildeInDir(filePath)
	if err != nil {
		return errors.WithMessagef(err, "resolving path to save %s", name)
	}
	f, err := os.Create(filePath)
	if err != nil {
		return errors.Wrapf(err, "creating %q to save %s", filePath, name)
	}
	enc := gob.NewEncoder(f)
	if err = serialize(enc); err != nil {
		_ = f.Close()
		return errors.WithMessagef(err, "saving %s to %q", name, filePath)
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "close file %q, where %s was saved", filePath, name)
	}
	return nil
}

// loadFromFile opens a file written by Save (a leading "~" is expanded) and
// decodes one instance from it.
func loadFromFile[M any](filePath, name string, deserialize func(*gob.Decoder) (M, error)) (M, error) {
	var zero M
	filePath, err := fsutil.ReplaceTildeInDir(filePath)
	if err != nil {
		return zero, errors.WithMessagef(err, "resolving path to load %s", name)
	}
	f, err := os.Open(filePath)
	if err != nil {
		return zero, errors.Wrapf(err, "opening %q to load %s", filePath, name)
	}
	m, err := deserialize(gob.NewDecoder(f))
	if err != nil {
		_ = f.Close()
		return zero, errors.WithMessagef(err, "loading %s from %q", name, filePath)
	}
	if err = f.Close(); err != nil {
		klog.Warningf("matrices: failed to close %q after loading %s: %v", filePath, name, err)
	}
	return m, nil
}

// GobSerialize writes the instance (shape header then flat data) into the
// encoder.
func (m *Numeric[T]) GobSerialize(encoder *gob.Encoder) error {
	return gobSerializeBuffer(m.Name(), &m.buffer, encoder)
}

// GobDeserialize reads one instance of this type from the decoder. It fails
// if the stored shape doesn't match the type's.
func (ct *NumericType[T]) GobDeserialize(decoder *gob.Decoder) (*Numeric[T], error) {
	flat, err := gobDeserializeBuffer[T](ct.typeSpec, decoder)
	if err != nil {
		return nil, err
	}
	return &Numeric[T]{buffer: buffer[T]{shape: ct.shape, flat: flat}, typ: ct}, nil
}

// Save writes the instance to the given file path, gob encoded.
func (m *Numeric[T]) Save(filePath string) error {
	return saveToFile(filePath, m.Name(), m.GobSerialize)
}

// Load reads an instance of this type from a file written by Save.
func (ct *NumericType[T]) Load(filePath string) (*Numeric[T], error) {
	return loadFromFile(filePath, ct.name, ct.GobDeserialize)
}

// GobSerialize writes the instance (shape header then flat data) into the
// encoder.
func (m *Integer[T]) GobSerialize(encoder *gob.Encoder) error {
	return gobSerializeBuffer(m.Name(), &m.buffer, encoder)
}

// GobDeserialize reads one instance of this type from the decoder. It fails
// if the stored shape doesn't match the type's.
func (ct *IntegerType[T]) GobDeserialize(decoder *gob.Decoder) (*Integer[T], error) {
	flat, err := gobDeserializeBuffer[T](ct.typeSpec, decoder)
	if err != nil {
		return nil, err
	}
	return &Integer[T]{buffer: buffer[T]{shape: ct.shape, flat: flat}, typ: ct}, nil
}

// Save writes the instance to the given file path, gob encoded.
func (m *Integer[T]) Save(filePath string) error {
	return saveToFile(filePath, m.Name(), m.GobSerialize)
}

// Load reads an instance of this type from a file written by Save.
func (ct *IntegerType[T]) Load(filePath string) (*Integer[T], error) {
	return loadFromFile(filePath, ct.name, ct.GobDeserialize)
}

// GobSerialize writes the instance (shape header then flat data) into the
// encoder. Opaque elements must be gob-encodable; interface elements need
// their concrete types registered with gob.Register first.
func (m *Generic[T]) GobSerialize(encoder *gob.Encoder) error {
	return gobSerializeBuffer(m.Name(), &m.buffer, encoder)
}

// GobDeserialize reads one instance of this type from the decoder. It fails
// if the stored shape doesn't match the type's.
func (ct *GenericType[T]) GobDeserialize(decoder *gob.Decoder) (*Generic[T], error) {
	flat, err := gobDeserializeBuffer[T](ct.typeSpec, decoder)
	if err != nil {
		return nil, err
	}
	return &Generic[T]{buffer: buffer[T]{shape: ct.shape, flat: flat}, typ: ct}, nil
}

// Save writes the instance to the given file path, gob encoded.
func (m *Generic[T]) Save(filePath string) error {
	return saveToFile(filePath, m.Name(), m.GobSerialize)
}

// Load reads an instance of this type from a file written by Save.
func (ct *GenericType[T]) Load(filePath string) (*Generic[T], error) {
	return loadFromFile(filePath, ct.name, ct.GobDeserialize)
}
