package loaders

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
)

// PLYHeader describes the layout of a PLY file
type PLYHeader struct {
	Format      string // "ascii", "binary_little_endian" or "binary_big_endian"
	VertexCount int
	FaceCount   int
	VertexProps []PLYProperty
	FaceProps   []PLYProperty
	HasNormals  bool
}

// PLYProperty is one property line of the header
type PLYProperty struct {
	Name     string
	Type     string
	IsList   bool
	ListType string // type of the list count
}

// PLYData holds the geometry read from a PLY file
type PLYData struct {
	Vertices []core.Vec3
	Normals  []core.Vec3 // per vertex, empty if absent
	Faces    []geometry.Face
}

// LoadPLY reads a PLY file from disk
func LoadPLY(filename string) (*PLYData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open PLY file %s", filename)
	}
	defer file.Close()

	data, err := ParsePLY(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse PLY file %s", filename)
	}
	return data, nil
}

// ParsePLY reads vertex positions, optional vertex normals and polygon
// faces. Other properties are skipped.
func ParsePLY(r io.Reader) (*PLYData, error) {
	br := bufio.NewReader(r)
	header, err := parsePLYHeader(br)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse PLY header")
	}

	var src plySource
	switch header.Format {
	case "ascii":
		src = &asciiSource{scanner: newWordScanner(br)}
	case "binary_little_endian":
		src = &binarySource{r: br, order: binary.LittleEndian}
	case "binary_big_endian":
		src = &binarySource{r: br, order: binary.BigEndian}
	default:
		return nil, errors.Errorf("unsupported PLY format %q", header.Format)
	}

	data := &PLYData{Vertices: make([]core.Vec3, 0, header.VertexCount)}
	if header.HasNormals {
		data.Normals = make([]core.Vec3, 0, header.VertexCount)
	}
	if err := readPLYVertices(src, header, data); err != nil {
		return nil, errors.Wrap(err, "failed to read vertices")
	}
	if err := readPLYFaces(src, header, data); err != nil {
		return nil, errors.Wrap(err, "failed to read faces")
	}
	return data, nil
}

// Mesh builds a triangle mesh from the parsed data
func (d *PLYData) Mesh() *geometry.TrigMesh {
	return geometry.NewTrigMesh(d.Vertices, d.Normals, d.Faces)
}

func parsePLYHeader(br *bufio.Reader) (*PLYHeader, error) {
	header := &PLYHeader{}
	var currentElement string
	first := true

	for {
		raw, err := br.ReadString('\n')
		if err != nil {
			return nil, errors.Wrap(err, "header not terminated")
		}
		line := strings.TrimSpace(raw)
		if first {
			if line != "ply" {
				return nil, errors.Errorf("missing ply magic, got %q", line)
			}
			first = false
			continue
		}
		if line == "end_header" {
			break
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		switch parts[0] {
		case "format":
			if len(parts) < 2 {
				return nil, errors.New("invalid format line")
			}
			header.Format = parts[1]
		case "element":
			if len(parts) < 3 {
				return nil, errors.Errorf("invalid element line %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid element count %q", parts[2])
			}
			if count < 0 {
				return nil, errors.Errorf("negative element count %d for %s", count, parts[1])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.VertexCount = count
			case "face":
				header.FaceCount = count
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, err
			}
			switch currentElement {
			case "vertex":
				header.VertexProps = append(header.VertexProps, prop)
				if prop.Name == "nx" {
					header.HasNormals = true
				}
			case "face":
				header.FaceProps = append(header.FaceProps, prop)
			}
		}
	}

	return header, nil
}

func parsePLYProperty(parts []string) (PLYProperty, error) {
	if len(parts) >= 1 && parts[0] == "list" {
		if len(parts) < 4 {
			return PLYProperty{}, errors.New("invalid list property definition")
		}
		return PLYProperty{IsList: true, ListType: parts[1], Type: parts[2], Name: parts[3]}, nil
	}
	if len(parts) < 2 {
		return PLYProperty{}, errors.New("invalid property definition")
	}
	return PLYProperty{Type: parts[0], Name: parts[1]}, nil
}

func readPLYVertices(src plySource, header *PLYHeader, data *PLYData) error {
	for i := 0; i < header.VertexCount; i++ {
		var pos, norm [3]float64
		for _, prop := range header.VertexProps {
			if prop.IsList {
				if err := skipList(src, prop); err != nil {
					return errors.Wrapf(err, "vertex %d", i)
				}
				continue
			}
			val, err := src.next(prop.Type)
			if err != nil {
				return errors.Wrapf(err, "vertex %d property %s", i, prop.Name)
			}
			switch prop.Name {
			case "x":
				pos[0] = val
			case "y":
				pos[1] = val
			case "z":
				pos[2] = val
			case "nx":
				norm[0] = val
			case "ny":
				norm[1] = val
			case "nz":
				norm[2] = val
			}
		}
		data.Vertices = append(data.Vertices, core.NewVec3(pos[0], pos[1], pos[2]))
		if header.HasNormals {
			data.Normals = append(data.Normals, core.NewVec3(norm[0], norm[1], norm[2]))
		}
	}
	return nil
}

func readPLYFaces(src plySource, header *PLYHeader, data *PLYData) error {
	for i := 0; i < header.FaceCount; i++ {
		for _, prop := range header.FaceProps {
			if !prop.IsList {
				if _, err := src.next(prop.Type); err != nil {
					return errors.Wrapf(err, "face %d", i)
				}
				continue
			}
			if prop.Name != "vertex_indices" && prop.Name != "vertex_index" {
				if err := skipList(src, prop); err != nil {
					return errors.Wrapf(err, "face %d", i)
				}
				continue
			}

			count, err := src.next(prop.ListType)
			if err != nil {
				return errors.Wrapf(err, "face %d count", i)
			}
			if count < 0 {
				return errors.Errorf("face %d: negative index count %d", i, int(count))
			}
			indices := make([]int, int(count))
			for k := range indices {
				idx, err := src.next(prop.Type)
				if err != nil {
					return errors.Wrapf(err, "face %d index %d", i, k)
				}
				if idx < 0 || int(idx) >= header.VertexCount {
					return errors.Errorf("face %d: vertex index %d out of range", i, int(idx))
				}
				indices[k] = int(idx)
			}
			for k := 1; k+1 < len(indices); k++ {
				v := [3]int{indices[0], indices[k], indices[k+1]}
				data.Faces = append(data.Faces, geometry.Face{V: v, N: v, Smooth: header.HasNormals})
			}
		}
	}
	return nil
}

func skipList(src plySource, prop PLYProperty) error {
	count, err := src.next(prop.ListType)
	if err != nil {
		return err
	}
	if count < 0 {
		return errors.Errorf("negative list count %d for %s", int(count), prop.Name)
	}
	for k := 0; k < int(count); k++ {
		if _, err := src.next(prop.Type); err != nil {
			return err
		}
	}
	return nil
}

// plySource yields scalar values of the body in file order
type plySource interface {
	next(dataType string) (float64, error)
}

type asciiSource struct {
	scanner *bufio.Scanner
}

func newWordScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return s
}

func (a *asciiSource) next(dataType string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

type binarySource struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binarySource) next(dataType string) (float64, error) {
	size := getTypeSize(dataType)
	if size == 0 {
		return 0, errors.Errorf("unknown PLY type %q", dataType)
	}
	p := b.buf[:size]
	if _, err := io.ReadFull(b.r, p); err != nil {
		return 0, err
	}

	switch dataType {
	case "char", "int8":
		return float64(int8(p[0])), nil
	case "uchar", "uint8":
		return float64(p[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(p))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(p)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(p))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(p)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(p))), nil
	default:
		return math.Float64frombits(b.order.Uint64(p)), nil
	}
}

// getTypeSize returns the byte size of a PLY scalar type, 0 if unknown
func getTypeSize(dataType string) int {
	switch dataType {
	case "char", "int8", "uchar", "uint8":
		return 1
	case "short", "int16", "ushort", "uint16":
		return 2
	case "int", "int32", "uint", "uint32", "float", "float32":
		return 4
	case "double", "float64":
		return 8
	default:
		return 0
	}
}
