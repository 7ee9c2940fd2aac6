// cmd/libhalhandles/exports.go
package main

import "halhandles-go/handles"

// Go-typed bodies of the C exports in main.go.

func createHandle(index int16, handleType uint8, version int16) int32 {
	return int32(handles.CreateHandle(index, handleType, version))
}

func createPortHandle(base int32, channel, module uint8) int32 {
	return int32(handles.CreatePortHandle(handles.PortHandle(base), channel, module))
}

func createPortHandleForSPI(base int32, channel uint8) int32 {
	return int32(handles.CreatePortHandleForSPI(handles.PortHandle(base), channel))
}

func createPortHandleShifted(base int32, channel, module uint8) int32 {
	return int32(handles.CreatePortHandleShifted(handles.PortHandle(base), channel, module))
}

func createPortHandleForSPIShifted(base int32, channel uint8) int32 {
	return int32(handles.CreatePortHandleForSPIShifted(handles.PortHandle(base), channel))
}

func createVersionedHandle(index int16, handleType uint8) int32 {
	return int32(handles.CreateVersioned(index, handles.Type(handleType)))
}

func resetHandleGenerations() {
	handles.DefaultGenerations.ResetAll()
}
