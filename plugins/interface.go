package plugins

// FileHandler describes the file handling capabilities
type FileHandler interface {
	WriteObjectInFile(data interface{}) error
	Close()
	IsInterfaceNil() bool
}
