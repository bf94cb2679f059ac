package frac

// IsNormal exposes the normal-form check to the external test package.
func IsNormal(f Frac) bool { return f.isNormal() }
