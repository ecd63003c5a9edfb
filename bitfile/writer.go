package bitfile

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Write serializes the bitstream to a .bit container at the given path.
// The configuration-data length field is recomputed from the current
// packet sequence.
func (b *Bitstream) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := b.WriteTo(w); err != nil {
		_ = f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

// WriteTo serializes the bitstream container to any io.Writer.
func (b *Bitstream) WriteTo(w io.Writer) error {
	words := b.configWords()

	var framing [2]byte
	binary.BigEndian.PutUint16(framing[:], magicLength)
	if _, err := w.Write(framing[:]); err != nil {
		return fmt.Errorf("write framing: %w", err)
	}
	if _, err := w.Write(bitMagic); err != nil {
		return fmt.Errorf("write magic: %w", err)
	}
	binary.BigEndian.PutUint16(framing[:], 1)
	if _, err := w.Write(framing[:]); err != nil {
		return fmt.Errorf("write framing: %w", err)
	}

	fields := []struct {
		key   byte
		value string
	}{
		{fieldDesignName, b.header.DesignName},
		{fieldPartName, b.header.PartName},
		{fieldDate, b.header.Date},
		{fieldTime, b.header.Time},
	}
	for _, f := range fields {
		if err := writeStringField(w, f.key, f.value); err != nil {
			return err
		}
	}

	// 'e' field: u32 byte length, then the configuration words.
	var head [5]byte
	head[0] = fieldData
	binary.BigEndian.PutUint32(head[1:], uint32(len(words)*WordSize))
	if _, err := w.Write(head[:]); err != nil {
		return fmt.Errorf("write data field: %w", err)
	}

	var wb [WordSize]byte
	for _, word := range words {
		binary.BigEndian.PutUint32(wb[:], word)
		if _, err := w.Write(wb[:]); err != nil {
			return fmt.Errorf("write configuration words: %w", err)
		}
	}
	return nil
}

// configWords flattens the preamble and packet sequence back into the
// raw word stream.
func (b *Bitstream) configWords() []uint32 {
	n := len(b.preamble)
	for _, p := range b.packets {
		n += 1 + int(p.WordCount())
	}

	words := make([]uint32, 0, n)
	words = append(words, b.preamble...)
	for _, p := range b.packets {
		words = append(words, p.Header())
		words = append(words, p.Words()...)
	}
	return words
}

// writeStringField emits one letter-keyed string field: key byte, u16
// length, the string, and its NUL terminator.
func writeStringField(w io.Writer, key byte, value string) error {
	var head [3]byte
	head[0] = key
	binary.BigEndian.PutUint16(head[1:], uint16(len(value)+1))
	if _, err := w.Write(head[:]); err != nil {
		return fmt.Errorf("write field %c: %w", key, err)
	}
	if _, err := w.Write(append([]byte(value), 0)); err != nil {
		return fmt.Errorf("write field %c: %w", key, err)
	}
	return nil
}
