package avi

import "errors"

// Structural and record-level errors, compared with errors.Is. Op-level
// context is added by AVIError, which wraps one of these the way
// os.PathError wraps a syscall errno.
var (
	ErrInvalidRiffFileType = errors.New("avi: RIFF file type is not \"AVI \"")
	ErrDuplicateHdrlList   = errors.New("avi: more than one hdrl list")
	ErrDuplicateMoviList   = errors.New("avi: more than one movi list")
	ErrDuplicateIdx1Chunk  = errors.New("avi: more than one idx1 chunk")
	ErrHdrlNotFound        = errors.New("avi: hdrl list not found")
	ErrMoviNotFound        = errors.New("avi: movi list not found")
	ErrInvalidHdrlList     = errors.New("avi: invalid hdrl list")
	ErrInvalidMoviList     = errors.New("avi: invalid movi list")

	ErrInvalidMainHeader         = errors.New("avi: invalid main header")
	ErrInvalidStreamList         = errors.New("avi: invalid stream list")
	ErrInvalidStreamHeader       = errors.New("avi: invalid stream header")
	ErrInvalidStreamFormatHeader = errors.New("avi: invalid stream format header")
	ErrInvalidStreamAdditionalData = errors.New("avi: invalid stream additional data")
	ErrInvalidAviMoviHeader      = errors.New("avi: invalid movi header")
	ErrInvalidIndexHeader        = errors.New("avi: invalid index header")
	ErrInvalidRecordList         = errors.New("avi: invalid record list index")
	ErrChunkInRecordList         = errors.New("avi: chunk belongs to a record list")
	ErrUnsupportedStreamType     = errors.New("avi: unsupported stream type")
)

// AVIError records the operation that failed alongside the underlying
// sentinel, mirroring os.PathError: Error() reports both, Unwrap()
// exposes Err so errors.Is still matches the sentinel.
type AVIError struct {
	Op  string
	Err error
}

func (e *AVIError) Error() string {
	return "avi: " + e.Op + ": " + e.Err.Error()
}

func (e *AVIError) Unwrap() error {
	return e.Err
}
