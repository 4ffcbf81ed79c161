// Package core exposes the Lo Shu computation to other Go programs.
//
// It returns the same versioned documents the loshu CLI prints:
//
//	reading, err := core.Compute(ctx, "22-10-1991", "male")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(reading.Status.Mulank, reading.Status.MissingNumbers)
//
// Errors wrap the sentinels re-exported here, so callers can branch with
// errors.Is without importing internal packages.
package core
