// Package meshio persists extracted meshes in a compact binary format.
//
// File layout: "TMSH" magic, version byte, little-endian uint32 vert,
// edge and face counts, xxhash64 of the raw payload, uint32 compressed
// payload length, then the zstd-compressed payload holding verts,
// edges and faces in order. The checksum is verified on load.
package meshio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/cespare/xxhash/v2"
	tetra "github.com/jeroenbakker-atmind/marching-tetrahedra"
	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	magic   = "TMSH"
	version = 1
)

// ErrChecksum reports a payload whose content hash does not match the
// stored hash.
var ErrChecksum = errors.New("meshio: payload checksum mismatch")

// Write encodes the mesh to w.
func Write(w io.Writer, m *tetra.Mesh) error {
	payload := encodePayload(m)
	sum := xxhash.Sum64(payload)

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	compressed := enc.EncodeAll(payload, nil)
	enc.Close()

	var buf bytes.Buffer
	buf.WriteString(magic)
	buf.WriteByte(version)
	binary.Write(&buf, binary.LittleEndian, uint32(len(m.Verts)))
	binary.Write(&buf, binary.LittleEndian, uint32(len(m.Edges)))
	binary.Write(&buf, binary.LittleEndian, uint32(len(m.Faces)))
	binary.Write(&buf, binary.LittleEndian, sum)
	binary.Write(&buf, binary.LittleEndian, uint32(len(compressed)))
	buf.Write(compressed)
	_, err = w.Write(buf.Bytes())
	return err
}

// Read decodes a mesh from r.
func Read(r io.Reader) (*tetra.Mesh, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, err
	}
	if string(head[:]) != magic {
		return nil, errors.New("meshio: not a TMSH file")
	}
	var ver uint8
	if err := binary.Read(r, binary.LittleEndian, &ver); err != nil {
		return nil, err
	}
	if ver != version {
		return nil, fmt.Errorf("meshio: unsupported version %d", ver)
	}
	var nVerts, nEdges, nFaces, plen uint32
	var sum uint64
	for _, field := range []any{&nVerts, &nEdges, &nFaces, &sum, &plen} {
		if err := binary.Read(r, binary.LittleEndian, field); err != nil {
			return nil, err
		}
	}
	compressed := make([]byte, plen)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	payload, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, err
	}
	if xxhash.Sum64(payload) != sum {
		return nil, ErrChecksum
	}
	return decodePayload(payload, int(nVerts), int(nEdges), int(nFaces))
}

// Save writes the mesh to a file.
func Save(path string, m *tetra.Mesh) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	return Write(fp, m)
}

// Load reads a mesh from a file.
func Load(path string) (*tetra.Mesh, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return Read(fp)
}

func encodePayload(m *tetra.Mesh) []byte {
	size := 24*len(m.Verts) + 8*len(m.Edges) + 12*len(m.Faces)
	payload := make([]byte, 0, size)
	var b [8]byte
	putF := func(f float64) {
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		payload = append(payload, b[:]...)
	}
	putI := func(i int) {
		binary.LittleEndian.PutUint32(b[:4], uint32(i))
		payload = append(payload, b[:4]...)
	}
	for _, v := range m.Verts {
		putF(v.X)
		putF(v.Y)
		putF(v.Z)
	}
	for _, e := range m.Edges {
		putI(e.V1)
		putI(e.V2)
	}
	for _, f := range m.Faces {
		putI(f.V1)
		putI(f.V2)
		putI(f.V3)
	}
	return payload
}

func decodePayload(payload []byte, nVerts, nEdges, nFaces int) (*tetra.Mesh, error) {
	want := 24*nVerts + 8*nEdges + 12*nFaces
	if len(payload) != want {
		return nil, fmt.Errorf("meshio: payload is %d bytes, want %d", len(payload), want)
	}
	getF := func() float64 {
		f := math.Float64frombits(binary.LittleEndian.Uint64(payload))
		payload = payload[8:]
		return f
	}
	getI := func() int {
		i := int(binary.LittleEndian.Uint32(payload))
		payload = payload[4:]
		return i
	}
	m := &tetra.Mesh{
		Verts: make([]r3.Vec, nVerts),
		Edges: make([]tetra.Edge, nEdges),
		Faces: make([]tetra.Face, nFaces),
	}
	for i := range m.Verts {
		m.Verts[i] = r3.Vec{X: getF(), Y: getF(), Z: getF()}
	}
	for i := range m.Edges {
		m.Edges[i] = tetra.Edge{V1: getI(), V2: getI()}
	}
	for i := range m.Faces {
		m.Faces[i] = tetra.Face{V1: getI(), V2: getI(), V3: getI()}
	}
	return m, nil
}
