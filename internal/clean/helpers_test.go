package clean

func iptr(v int) *int { return &v }

func sptr(v string) *string { return &v }

func fptr(v float64) *float64 { return &v }
