package geodesic

import "math"

// Some of the harder code here derives with appreciation from quartercastle: https://github.com/quartercastle/vector

// VecX represents a unit vector in the global direction of X on the right-handed coordinate system used here.
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector in the global direction of Y (upwards).
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector in the global direction of Z (backwards, towards you).
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D point or direction.
// Any Vector functions that modify the calling Vector return copies of the modified Vector, meaning you can do method-chaining easily.
// Vectors seem to be most efficient when copied (so try not to store pointers to them if possible, as dereferencing pointers
// can be more inefficient than directly acting on data, and storing pointers moves variables to heap).
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling Vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Invert returns a copy of the Vector with all components inverted.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.MagnitudeSquared())
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Distance returns the distance between the calling Vector and the other Vector provided.
func (vec Vector) Distance(other Vector) float64 {
	return vec.Sub(other).Magnitude()
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Scale scales a Vector by the given scalar.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Divide divides a Vector by the given scalar.
func (vec Vector) Divide(scalar float64) Vector {
	vec.X /= scalar
	vec.Y /= scalar
	vec.Z /= scalar
	return vec
}

// Dot returns the dot product of a Vector and another Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Floats returns a [3]float64 array consisting of the Vector's contents.
func (vec Vector) Floats() [3]float64 {
	return [3]float64{vec.X, vec.Y, vec.Z}
}

// Equals returns true if the two Vectors are close enough in all values.
func (vec Vector) Equals(other Vector) bool {

	eps := 1e-8

	if math.Abs(vec.X-other.X) > eps || math.Abs(vec.Y-other.Y) > eps || math.Abs(vec.Z-other.Z) > eps {
		return false
	}

	return true

}

// IsZero returns true if the values in the Vector are extremely close to 0.
func (vec Vector) IsZero() bool {

	eps := 1e-8

	if math.Abs(vec.X) > eps || math.Abs(vec.Y) > eps || math.Abs(vec.Z) > eps {
		return false
	}

	return true

}

// Rotate returns a copy of the Vector, rotated around the Vector axis provided by the angle provided (in radians).
// The function is most efficient if passed an orthogonal, normalized axis (i.e. the VecX, VecY, or VecZ constants).
func (vec Vector) Rotate(axis Vector, angle float64) Vector {

	cos, sin := math.Cos(angle), math.Sin(angle)

	if axis.Equals(VecX) {
		ay, az := vec.Y, vec.Z
		vec.Y = ay*cos - az*sin
		vec.Z = ay*sin + az*cos
		return vec
	}

	if axis.Equals(VecY) {
		ax, az := vec.X, vec.Z
		vec.X = ax*cos + az*sin
		vec.Z = -ax*sin + az*cos
		return vec
	}

	if axis.Equals(VecZ) {
		ax, ay := vec.X, vec.Y
		vec.X = ax*cos - ay*sin
		vec.Y = ax*sin + ay*cos
		return vec
	}

	u := axis.Unit()

	x := u.Cross(vec)

	d := u.Dot(vec)

	vec = vec.Scale(cos)
	vec = vec.Add(x.Scale(sin))
	vec = vec.Add(u.Scale(d).Scale(1 - cos))

	return vec

}

// Angle returns the angle between the calling Vector and the provided other Vector.
func (vec Vector) Angle(other Vector) float64 {
	return math.Acos(vec.Unit().Dot(other.Unit()))
}
