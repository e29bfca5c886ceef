package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/df07/go-pathtracer/pkg/core"
)

// plyHeader represents the parsed header information from a PLY file
type plyHeader struct {
	format      string // "binary_little_endian", "binary_big_endian", or "ascii"
	vertexCount int
	faceCount   int
	vertexProps []plyProperty
	faceProps   []plyProperty
}

// plyProperty represents a property definition in the PLY header
type plyProperty struct {
	name     string
	typ      string // Scalar type, or element type of a list
	isList   bool
	listType string // For list properties, the type of the count
}

// LoadPLY loads vertex positions and faces from a PLY file.
// Polygonal faces are split into triangle fans; other properties are skipped.
func LoadPLY(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ply: %w", err)
	}
	defer file.Close()

	mesh, err := ReadPLY(file)
	if err != nil {
		return nil, fmt.Errorf("read ply %s: %w", path, err)
	}
	mesh.Name = filepath.Base(path)
	return mesh, nil
}

// ReadPLY reads a PLY stream in any of the three standard encodings
func ReadPLY(r io.Reader) (*Mesh, error) {
	reader := bufio.NewReader(r)
	header, err := parsePLYHeader(reader)
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	var values valueReader
	switch header.format {
	case "ascii":
		scanner := bufio.NewScanner(reader)
		scanner.Split(bufio.ScanWords)
		values = &asciiReader{scanner: scanner}
	case "binary_little_endian":
		values = &binaryReader{r: reader, order: binary.LittleEndian}
	case "binary_big_endian":
		values = &binaryReader{r: reader, order: binary.BigEndian}
	default:
		return nil, fmt.Errorf("unsupported PLY format: %s", header.format)
	}

	mesh := &Mesh{}
	if err := readVertices(values, header, mesh); err != nil {
		return nil, err
	}
	if err := readFaces(values, header, mesh); err != nil {
		return nil, err
	}
	if err := mesh.Validate(); err != nil {
		return nil, err
	}
	return mesh, nil
}

// parsePLYHeader consumes the header up to and including end_header
func parsePLYHeader(reader *bufio.Reader) (*plyHeader, error) {
	header := &plyHeader{}
	var currentElement string

	for lineNum := 1; ; lineNum++ {
		line, err := reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return nil, fmt.Errorf("header ends before end_header: %w", err)
		}
		line = strings.TrimSpace(line)

		if lineNum == 1 {
			if line != "ply" {
				return nil, fmt.Errorf("missing ply magic number")
			}
			continue
		}
		if line == "end_header" {
			return header, nil
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "format":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid format line: %q", line)
			}
			header.format = parts[1]
		case "comment", "obj_info":
			// Ignore comments
		case "element":
			if len(parts) < 3 {
				return nil, fmt.Errorf("invalid element line: %q", line)
			}
			count, err := strconv.Atoi(parts[2])
			if err != nil || count < 0 {
				return nil, fmt.Errorf("invalid element count: %s", parts[2])
			}
			currentElement = parts[1]
			switch currentElement {
			case "vertex":
				header.vertexCount = count
			case "face":
				header.faceCount = count
			default:
				if count > 0 {
					return nil, fmt.Errorf("unsupported element %q", currentElement)
				}
			}
		case "property":
			prop, err := parsePLYProperty(parts[1:])
			if err != nil {
				return nil, fmt.Errorf("failed to parse property: %w", err)
			}
			switch currentElement {
			case "vertex":
				header.vertexProps = append(header.vertexProps, prop)
			case "face":
				header.faceProps = append(header.faceProps, prop)
			}
		default:
			return nil, fmt.Errorf("unexpected header line: %q", line)
		}
	}
}

// parsePLYProperty parses a property line from the PLY header
func parsePLYProperty(parts []string) (plyProperty, error) {
	if len(parts) < 2 {
		return plyProperty{}, fmt.Errorf("invalid property definition")
	}
	if parts[0] == "list" {
		if len(parts) < 4 {
			return plyProperty{}, fmt.Errorf("invalid list property definition")
		}
		return plyProperty{isList: true, listType: parts[1], typ: parts[2], name: parts[3]}, nil
	}
	return plyProperty{typ: parts[0], name: parts[1]}, nil
}

func readVertices(values valueReader, header *plyHeader, mesh *Mesh) error {
	mesh.Vertices = make([]core.Vec3, header.vertexCount)
	for i := 0; i < header.vertexCount; i++ {
		var xyz [3]float64
		for _, prop := range header.vertexProps {
			if prop.isList {
				if _, err := readList(values, prop); err != nil {
					return fmt.Errorf("vertex %d: %w", i, err)
				}
				continue
			}
			v, err := values.next(prop.typ)
			if err != nil {
				return fmt.Errorf("vertex %d property %s: %w", i, prop.name, err)
			}
			switch prop.name {
			case "x":
				xyz[0] = v
			case "y":
				xyz[1] = v
			case "z":
				xyz[2] = v
			}
		}
		mesh.Vertices[i] = core.NewVec3(xyz[0], xyz[1], xyz[2])
	}
	return nil
}

func readFaces(values valueReader, header *plyHeader, mesh *Mesh) error {
	for i := 0; i < header.faceCount; i++ {
		for _, prop := range header.faceProps {
			if !prop.isList {
				if _, err := values.next(prop.typ); err != nil {
					return fmt.Errorf("face %d property %s: %w", i, prop.name, err)
				}
				continue
			}
			list, err := readList(values, prop)
			if err != nil {
				return fmt.Errorf("face %d: %w", i, err)
			}
			if prop.name != "vertex_indices" && prop.name != "vertex_index" {
				continue
			}
			indices := make([]int, len(list))
			for j, v := range list {
				indices[j] = int(v)
			}
			mesh.Faces = append(mesh.Faces, triangulate(indices)...)
		}
	}
	return nil
}

func readList(values valueReader, prop plyProperty) ([]float64, error) {
	count, err := values.next(prop.listType)
	if err != nil {
		return nil, fmt.Errorf("list %s count: %w", prop.name, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("list %s has negative length", prop.name)
	}
	list := make([]float64, int(count))
	for j := range list {
		if list[j], err = values.next(prop.typ); err != nil {
			return nil, fmt.Errorf("list %s item %d: %w", prop.name, j, err)
		}
	}
	return list, nil
}

// valueReader yields successive scalar values of the body
type valueReader interface {
	next(typ string) (float64, error)
}

type asciiReader struct {
	scanner *bufio.Scanner
}

func (a *asciiReader) next(typ string) (float64, error) {
	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.ErrUnexpectedEOF
	}
	if _, err := typeSize(typ); err != nil {
		return 0, err
	}
	return strconv.ParseFloat(a.scanner.Text(), 64)
}

type binaryReader struct {
	r     io.Reader
	order binary.ByteOrder
	buf   [8]byte
}

func (b *binaryReader) next(typ string) (float64, error) {
	size, err := typeSize(typ)
	if err != nil {
		return 0, err
	}
	data := b.buf[:size]
	if _, err := io.ReadFull(b.r, data); err != nil {
		return 0, err
	}

	switch typ {
	case "char", "int8":
		return float64(int8(data[0])), nil
	case "uchar", "uint8":
		return float64(data[0]), nil
	case "short", "int16":
		return float64(int16(b.order.Uint16(data))), nil
	case "ushort", "uint16":
		return float64(b.order.Uint16(data)), nil
	case "int", "int32":
		return float64(int32(b.order.Uint32(data))), nil
	case "uint", "uint32":
		return float64(b.order.Uint32(data)), nil
	case "float", "float32":
		return float64(math.Float32frombits(b.order.Uint32(data))), nil
	default: // double
		return math.Float64frombits(b.order.Uint64(data)), nil
	}
}

// typeSize returns the size in bytes of a PLY data type
func typeSize(dataType string) (int, error) {
	switch dataType {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4, nil
	case "double", "float64":
		return 8, nil
	case "short", "int16", "ushort", "uint16":
		return 2, nil
	case "char", "int8", "uchar", "uint8":
		return 1, nil
	default:
		return 0, fmt.Errorf("unknown PLY type %q", dataType)
	}
}
