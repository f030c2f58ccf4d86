package scenegen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

var ErrMalformedLiteral = errors.New("scenegen: malformed literal")

func malformed(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrMalformedLiteral, fmt.Sprintf(format, args...))
}

// splitTopLevel splits s on commas that are not nested inside parentheses.
func splitTopLevel(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var parts []string
	depth, start := 0, 0
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, malformed("unbalanced ')' in %q", s)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, malformed("unbalanced '(' in %q", s)
	}
	return append(parts, strings.TrimSpace(s[start:])), nil
}

// callArgs strips name( ... ) and returns the top-level arguments.
func callArgs(s, name string) ([]string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, name+"(") || !strings.HasSuffix(s, ")") {
		return nil, malformed("expected %s(...), got %q", name, s)
	}
	return splitTopLevel(s[len(name)+1 : len(s)-1])
}

// ParseFloat accepts a literal with or without the trailing f suffix.
func ParseFloat(s string) (float64, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "f")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, malformed("float %q: %v", s, err)
	}
	return v, nil
}

// parseVec3 accepts vec3(x,y,z) and the broadcast form vec3(x).
func parseVec3(s string) (mgl64.Vec3, error) {
	args, err := callArgs(s, "vec3")
	if err != nil {
		return mgl64.Vec3{}, err
	}
	switch len(args) {
	case 1:
		v, err := ParseFloat(args[0])
		if err != nil {
			return mgl64.Vec3{}, err
		}
		return mgl64.Vec3{v, v, v}, nil
	case 3:
		var out mgl64.Vec3
		for i, a := range args {
			if out[i], err = ParseFloat(a); err != nil {
				return mgl64.Vec3{}, err
			}
		}
		return out, nil
	}
	return mgl64.Vec3{}, malformed("vec3 takes 1 or 3 components, got %d", len(args))
}

func ParseSphere(s string) (Sphere, error) {
	args, err := callArgs(s, "Sphere")
	if err != nil {
		return Sphere{}, err
	}
	if len(args) != 2 {
		return Sphere{}, malformed("Sphere takes 2 arguments, got %d", len(args))
	}
	center, err := parseVec3(args[0])
	if err != nil {
		return Sphere{}, err
	}
	radius, err := ParseFloat(args[1])
	if err != nil {
		return Sphere{}, err
	}
	return Sphere{Center: center, Radius: radius}, nil
}

func ParseBRDF(s string) (BRDF, error) {
	args, err := callArgs(s, "BRDF")
	if err != nil {
		return BRDF{}, err
	}
	if len(args) != 4 {
		return BRDF{}, malformed("BRDF takes 4 arguments, got %d", len(args))
	}
	kind, err := strconv.Atoi(args[0])
	if err != nil || kind < int(Diffuse) || kind > int(Refractive) {
		return BRDF{}, malformed("BRDF discriminant %q", args[0])
	}
	color, err := parseVec3(args[1])
	if err != nil {
		return BRDF{}, err
	}
	fuzz, err := ParseFloat(args[2])
	if err != nil {
		return BRDF{}, err
	}
	ior, err := ParseFloat(args[3])
	if err != nil {
		return BRDF{}, err
	}
	return BRDF{Kind: BRDFKind(kind), Color: color, Fuzz: fuzz, IOR: ior}, nil
}

// ParseArray splits "T name[N] = T[](e0,...);" into its element literals and
// checks the declared length.
func ParseArray(stmt, typ string) ([]string, error) {
	stmt = strings.TrimSpace(stmt)
	decl, body, ok := strings.Cut(stmt, "=")
	if !ok {
		return nil, malformed("missing '=' in %s statement", typ)
	}
	decl = strings.TrimSpace(decl)
	if !strings.HasPrefix(decl, typ+" ") {
		return nil, malformed("statement does not declare %s", typ)
	}
	lb, rb := strings.IndexByte(decl, '['), strings.LastIndexByte(decl, ']')
	if lb < 0 || rb < lb {
		return nil, malformed("missing array length in %q", decl)
	}
	n, err := strconv.Atoi(decl[lb+1 : rb])
	if err != nil {
		return nil, malformed("array length %q", decl[lb+1:rb])
	}

	body = strings.TrimSuffix(strings.TrimSpace(body), ";")
	elems, err := callArgs(body, typ+"[]")
	if err != nil {
		return nil, err
	}
	if len(elems) != n {
		return nil, malformed("%s array declares %d elements, has %d", typ, n, len(elems))
	}
	return elems, nil
}

// ParseScene reads the two statements produced by Render back into a scene.
func ParseScene(text string, names ArrayNames) (*Scene, error) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) != 2 {
		return nil, malformed("expected 2 statements, got %d", len(lines))
	}

	sphereLits, err := ParseArray(lines[0], names.SphereType)
	if err != nil {
		return nil, err
	}
	brdfLits, err := ParseArray(lines[1], names.BRDFType)
	if err != nil {
		return nil, err
	}
	if len(sphereLits) != len(brdfLits) {
		return nil, ErrMisaligned
	}

	scene := &Scene{}
	for i := range sphereLits {
		s, err := ParseSphere(sphereLits[i])
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		b, err := ParseBRDF(brdfLits[i])
		if err != nil {
			return nil, fmt.Errorf("brdf %d: %w", i, err)
		}
		scene.Add(s, b)
	}
	return scene, nil
}
