package decode

// sniffBOM inspects the first bytes of data for a UTF-8 or UTF-16 byte
// order mark. Returns the implied charset label and the BOM's byte
// length, or ("", 0) if none is present.
func sniffBOM(data []byte) (charset string, skip int) {
	switch {
	case len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF:
		return "utf-8", 3
	case len(data) >= 2 && data[0] == 0xFF && data[1] == 0xFE:
		return "utf-16le", 2
	case len(data) >= 2 && data[0] == 0xFE && data[1] == 0xFF:
		return "utf-16be", 2
	default:
		return "", 0
	}
}
