package hit

import "spheretrace/ray"

// World is an ordered collection of hittables that reports the closest hit
// among them.  Build it before rendering; it is safe for concurrent Hit calls
// once nothing is being added.
type World struct {
	Objects []Hittable
}

func (w *World) Add(h Hittable) {
	w.Objects = append(w.Objects, h)
}

func (w *World) Len() int {
	return len(w.Objects)
}

func (w *World) Hit(r ray.Ray, tMin, tMax float64) (Record, bool) {
	var closest Record
	hitAnything := false
	closestSoFar := tMax

	for _, obj := range w.Objects {
		rec, ok := obj.Hit(r, tMin, closestSoFar)
		if !ok {
			continue
		}
		hitAnything = true
		closestSoFar = rec.T
		closest = rec
	}

	return closest, hitAnything
}
