package scenegen

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// RoundDecimals rounds v to two decimals. The exact binary value is rounded,
// ties to even, so 1.005 (stored just below) becomes 1.0 and 0.125 becomes 0.12.
func RoundDecimals(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return r
}

// FormatFloat renders v as a single precision literal: rounded to two
// decimals, shortest form, at least one fractional digit, "f" suffix.
func FormatFloat(v float64) string {
	s := strconv.FormatFloat(RoundDecimals(v), 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s + "f"
}

func formatVec3(v mgl64.Vec3) string {
	return "vec3(" + FormatFloat(v[0]) + "," + FormatFloat(v[1]) + "," + FormatFloat(v[2]) + ")"
}

// FormatSphere renders Sphere(vec3(X,Y,Z), R).
func FormatSphere(s Sphere) string {
	return "Sphere(" + formatVec3(s.Center) + ", " + FormatFloat(s.Radius) + ")"
}

// FormatBRDF renders BRDF(D, vec3(R,G,B), F, N).
func FormatBRDF(b BRDF) string {
	return "BRDF(" + strconv.Itoa(int(b.Kind)) + ", " + formatVec3(b.Color) + ", " +
		FormatFloat(b.Fuzz) + ", " + FormatFloat(b.IOR) + ")"
}

// FormatArray renders one initializer statement:
//
//	T name[N] = T[](e0,e1,...);
func FormatArray(typ, name string, elems []string) string {
	return fmt.Sprintf("%s %s[%d] = %s[](%s);", typ, name, len(elems), typ, strings.Join(elems, ","))
}

func SphereLiterals(spheres []Sphere) []string {
	out := make([]string, len(spheres))
	for i, s := range spheres {
		out[i] = FormatSphere(s)
	}
	return out
}

func BRDFLiterals(brdfs []BRDF) []string {
	out := make([]string, len(brdfs))
	for i, b := range brdfs {
		out[i] = FormatBRDF(b)
	}
	return out
}

// Render returns both statements, spheres first, each newline terminated.
func Render(scene *Scene, names ArrayNames) ([]byte, error) {
	if err := scene.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.WriteString(FormatArray(names.SphereType, names.SphereVar, SphereLiterals(scene.Spheres)))
	buf.WriteByte('\n')
	buf.WriteString(FormatArray(names.BRDFType, names.BRDFVar, BRDFLiterals(scene.BRDFs)))
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// WriteScene renders the scene fully before issuing a single write, so a
// failing writer never receives a partial statement from us.
func WriteScene(w io.Writer, scene *Scene, names ArrayNames) error {
	out, err := Render(scene, names)
	if err != nil {
		return fmt.Errorf("render scene %s: %w", scene.ID, err)
	}
	n, err := w.Write(out)
	if err != nil {
		return fmt.Errorf("write scene %s: %w", scene.ID, err)
	}
	if n != len(out) {
		return fmt.Errorf("write scene %s: %w", scene.ID, io.ErrShortWrite)
	}
	return nil
}
