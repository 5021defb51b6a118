package mock

// FileHandlerStub -
type FileHandlerStub struct {
	WriteObjectInFileCalled func(data interface{}) error
	CloseCalled             func()
}

// WriteObjectInFile -
func (fhs *FileHandlerStub) WriteObjectInFile(data interface{}) error {
	if fhs.WriteObjectInFileCalled != nil {
		return fhs.WriteObjectInFileCalled(data)
	}

	return nil
}

// Close -
func (fhs *FileHandlerStub) Close() {
	if fhs.CloseCalled != nil {
		fhs.CloseCalled()
	}
}

// IsInterfaceNil -
func (fhs *FileHandlerStub) IsInterfaceNil() bool {
	return fhs == nil
}
