package scenegen

import "fmt"

type Stats struct {
	Total      int
	Diffuse    int
	Reflective int
	Refractive int
	Rejected   int
}

func (s *Scene) Stats() Stats {
	st := Stats{Total: len(s.Spheres), Rejected: s.Rejected}
	for _, b := range s.BRDFs {
		switch b.Kind {
		case Diffuse:
			st.Diffuse++
		case Reflective:
			st.Reflective++
		case Refractive:
			st.Refractive++
		}
	}
	return st
}

func (st Stats) String() string {
	return fmt.Sprintf("%d spheres (%d diffuse, %d reflective, %d refractive), %d cells rejected",
		st.Total, st.Diffuse, st.Reflective, st.Refractive, st.Rejected)
}
