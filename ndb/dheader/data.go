package dheader

type (
	Header struct {
		Digit      uint16 `json:"digit"`
		Version    uint16 `json:"version"`
		Unknown1   uint32 `json:"unknown_1"`
		DBSize     uint32 `json:"db_size"`
		Zero       uint32 `json:"zero"`
		TableCount uint32 `json:"table_count"`
		Unknown2   uint32 `json:"unknown_2"`
	}
)

const (
	DefaultHeaderSize = 24
)
