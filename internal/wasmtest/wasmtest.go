// Package wasmtest hand-encodes minimal WebAssembly binaries for tests.
// It covers just enough of the binary format to build command modules that
// import preview1 host calls, export a memory and an entry function, and
// carry data segments. All function types use i32 value types only.
package wasmtest

import "bytes"

// Section IDs from the wasm binary format.
const (
	sectionType     = 1
	sectionImport   = 2
	sectionFunction = 3
	sectionMemory   = 5
	sectionExport   = 7
	sectionCode     = 10
	sectionData     = 11
)

// Import is a host function import; Params and Results are i32 counts.
type Import struct {
	Module  string
	Name    string
	Params  int
	Results int
}

// Func is a module-local function. A non-empty Name exports it.
// Body is raw instruction bytes; the terminating end opcode is appended
// automatically.
type Func struct {
	Name    string
	Params  int
	Results int
	Body    []byte
}

// Segment is an active data segment placed at a constant offset.
type Segment struct {
	Offset uint32
	Bytes  []byte
}

// Module describes the binary to build.
type Module struct {
	Imports      []Import
	Funcs        []Func
	MemoryPages  uint32 // minimum page count; 0 omits the memory section
	ExportMemory bool   // export memory 0 under the name "memory"
	Data         []Segment
}

// Build encodes the module.
func (m Module) Build() []byte {
	var out bytes.Buffer
	out.Write([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00})

	// One type entry per import and per local function, in that order.
	var types bytes.Buffer
	writeU32(&types, uint32(len(m.Imports)+len(m.Funcs)))
	for _, imp := range m.Imports {
		writeFuncType(&types, imp.Params, imp.Results)
	}
	for _, fn := range m.Funcs {
		writeFuncType(&types, fn.Params, fn.Results)
	}
	writeSection(&out, sectionType, types.Bytes())

	if len(m.Imports) > 0 {
		var imports bytes.Buffer
		writeU32(&imports, uint32(len(m.Imports)))
		for i, imp := range m.Imports {
			writeName(&imports, imp.Module)
			writeName(&imports, imp.Name)
			imports.WriteByte(0x00) // func import
			writeU32(&imports, uint32(i))
		}
		writeSection(&out, sectionImport, imports.Bytes())
	}

	if len(m.Funcs) > 0 {
		var funcs bytes.Buffer
		writeU32(&funcs, uint32(len(m.Funcs)))
		for i := range m.Funcs {
			writeU32(&funcs, uint32(len(m.Imports)+i))
		}
		writeSection(&out, sectionFunction, funcs.Bytes())
	}

	if m.MemoryPages > 0 {
		var mem bytes.Buffer
		writeU32(&mem, 1)
		mem.WriteByte(0x00) // min only
		writeU32(&mem, m.MemoryPages)
		writeSection(&out, sectionMemory, mem.Bytes())
	}

	var exports bytes.Buffer
	var exportCount uint32
	for i, fn := range m.Funcs {
		if fn.Name == "" {
			continue
		}
		writeName(&exports, fn.Name)
		exports.WriteByte(0x00) // func export
		writeU32(&exports, uint32(len(m.Imports)+i))
		exportCount++
	}
	if m.ExportMemory {
		writeName(&exports, "memory")
		exports.WriteByte(0x02) // memory export
		writeU32(&exports, 0)
		exportCount++
	}
	if exportCount > 0 {
		var sec bytes.Buffer
		writeU32(&sec, exportCount)
		sec.Write(exports.Bytes())
		writeSection(&out, sectionExport, sec.Bytes())
	}

	if len(m.Funcs) > 0 {
		var code bytes.Buffer
		writeU32(&code, uint32(len(m.Funcs)))
		for _, fn := range m.Funcs {
			var body bytes.Buffer
			writeU32(&body, 0) // no locals
			body.Write(fn.Body)
			body.WriteByte(0x0b) // end
			writeU32(&code, uint32(body.Len()))
			code.Write(body.Bytes())
		}
		writeSection(&out, sectionCode, code.Bytes())
	}

	if len(m.Data) > 0 {
		var data bytes.Buffer
		writeU32(&data, uint32(len(m.Data)))
		for _, seg := range m.Data {
			writeU32(&data, 0) // active, memory 0
			data.Write(I32Const(int32(seg.Offset)))
			data.WriteByte(0x0b)
			writeU32(&data, uint32(len(seg.Bytes)))
			data.Write(seg.Bytes)
		}
		writeSection(&out, sectionData, data.Bytes())
	}

	return out.Bytes()
}

// Instruction helpers for test bodies.

// I32Const encodes i32.const v.
func I32Const(v int32) []byte {
	out := []byte{0x41}
	return appendSLEB(out, v)
}

// Call encodes call idx.
func Call(idx uint32) []byte {
	var buf bytes.Buffer
	buf.WriteByte(0x10)
	writeU32(&buf, idx)
	return buf.Bytes()
}

// Drop is the drop opcode.
var Drop = []byte{0x1a}

// Unreachable is the unreachable opcode.
var Unreachable = []byte{0x00}

// Instrs concatenates instruction fragments into one body.
func Instrs(frags ...[]byte) []byte {
	var out []byte
	for _, f := range frags {
		out = append(out, f...)
	}
	return out
}

func writeSection(out *bytes.Buffer, id byte, payload []byte) {
	out.WriteByte(id)
	writeU32(out, uint32(len(payload)))
	out.Write(payload)
}

func writeFuncType(out *bytes.Buffer, params, results int) {
	out.WriteByte(0x60)
	writeU32(out, uint32(params))
	for i := 0; i < params; i++ {
		out.WriteByte(0x7f) // i32
	}
	writeU32(out, uint32(results))
	for i := 0; i < results; i++ {
		out.WriteByte(0x7f)
	}
}

func writeName(out *bytes.Buffer, s string) {
	writeU32(out, uint32(len(s)))
	out.WriteString(s)
}

// writeU32 writes an unsigned LEB128 encoded uint32.
func writeU32(out *bytes.Buffer, v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		out.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

// appendSLEB appends a signed LEB128 encoded int32.
func appendSLEB(out []byte, v int32) []byte {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0) {
			return append(out, b)
		}
		out = append(out, b|0x80)
	}
}
