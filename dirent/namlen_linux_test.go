package dirent

// setTestNamlen is a no-op, Linux dirent records carry no name length.
func setTestNamlen([]byte, int) {}
