// cmd/libhalhandles/main.go
//
// Build with:
//
//	go build -buildmode=c-shared -o libhalhandles.so ./cmd/libhalhandles
//
// The generated header declares the functions below with the exact C widths.
// Every export returns 0 for an invalid handle and never panics.
//
// rust_create_handle, rust_create_port_handle and
// rust_create_port_handle_for_spi keep the names and signatures existing
// HAL callers link against; the hal_* names are aliases.
package main

// #include <stdint.h>
import "C"

//export rust_create_handle
func rust_create_handle(index C.int16_t, handleType C.uint8_t, version C.int16_t) C.int32_t {
	return C.int32_t(createHandle(int16(index), uint8(handleType), int16(version)))
}

//export rust_create_port_handle
func rust_create_port_handle(base C.int32_t, channel, module C.uint8_t) C.int32_t {
	return C.int32_t(createPortHandle(int32(base), uint8(channel), uint8(module)))
}

//export rust_create_port_handle_for_spi
func rust_create_port_handle_for_spi(base C.int32_t, channel C.uint8_t) C.int32_t {
	return C.int32_t(createPortHandleForSPI(int32(base), uint8(channel)))
}

//export hal_create_handle
func hal_create_handle(index C.int16_t, handleType C.uint8_t, version C.int16_t) C.int32_t {
	return C.int32_t(createHandle(int16(index), uint8(handleType), int16(version)))
}

//export hal_create_port_handle
func hal_create_port_handle(base C.int32_t, channel, module C.uint8_t) C.int32_t {
	return C.int32_t(createPortHandle(int32(base), uint8(channel), uint8(module)))
}

//export hal_create_port_handle_for_spi
func hal_create_port_handle_for_spi(base C.int32_t, channel C.uint8_t) C.int32_t {
	return C.int32_t(createPortHandleForSPI(int32(base), uint8(channel)))
}

//export hal_create_port_handle_shifted
func hal_create_port_handle_shifted(base C.int32_t, channel, module C.uint8_t) C.int32_t {
	return C.int32_t(createPortHandleShifted(int32(base), uint8(channel), uint8(module)))
}

//export hal_create_port_handle_for_spi_shifted
func hal_create_port_handle_for_spi_shifted(base C.int32_t, channel C.uint8_t) C.int32_t {
	return C.int32_t(createPortHandleForSPIShifted(int32(base), uint8(channel)))
}

//export hal_create_versioned_handle
func hal_create_versioned_handle(index C.int16_t, handleType C.uint8_t) C.int32_t {
	return C.int32_t(createVersionedHandle(int16(index), uint8(handleType)))
}

//export hal_reset_handle_generations
func hal_reset_handle_generations() {
	resetHandleGenerations()
}

func main() {}
