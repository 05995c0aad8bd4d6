// Package proj converts WGS-84 geographic coordinates into a locally
// accurate planar system so that radius buffers and distances can be
// computed in meters. Distance math on raw degrees is never correct:
// a degree of longitude shrinks with latitude, so degree-based thresholds
// silently produce non-uniform results.
package proj

import "math"

// WGS-84 ellipsoid.
const (
	semiMajorAxis = 6378137.0
	flattening    = 1.0 / 298.257223563
)

// PlanarPoint - точка в плоской системе координат, метры
type PlanarPoint struct {
	X float64 // easting
	Y float64 // northing
}

// TransverseMercator - прямое преобразование из градусов WGS-84 в метры
// проекции Гаусса-Крюгера с заданным осевым меридианом
type TransverseMercator struct {
	centralMeridianRad float64
	scale              float64
	falseEasting       float64
	falseNorthing      float64
}

// UTM43N covers the Ahmedabad region (72°E-78°E); the target metro area
// sits about 2.4° from the central meridian, well inside the zone.
var UTM43N = TransverseMercator{
	centralMeridianRad: 75.0 * math.Pi / 180.0,
	scale:              0.9996,
	falseEasting:       500000.0,
	falseNorthing:      0.0,
}

// Forward проецирует широту и долготу (в градусах) в плоские координаты
// в метрах. Формулы - ряды Снайдера для поперечной проекции Меркатора
// на эллипсоиде; в пределах зоны погрешность меньше миллиметра.
func (t TransverseMercator) Forward(lat, lon float64) PlanarPoint {
	phi := lat * math.Pi / 180.0
	lam := lon * math.Pi / 180.0

	a := semiMajorAxis
	e2 := flattening * (2 - flattening)
	ep2 := e2 / (1 - e2)

	sinPhi := math.Sin(phi)
	cosPhi := math.Cos(phi)

	n := a / math.Sqrt(1-e2*sinPhi*sinPhi)
	tt := math.Tan(phi) * math.Tan(phi)
	c := ep2 * cosPhi * cosPhi
	aa := (lam - t.centralMeridianRad) * cosPhi

	e4 := e2 * e2
	e6 := e4 * e2
	m := a * ((1-e2/4-3*e4/64-5*e6/256)*phi -
		(3*e2/8+3*e4/32+45*e6/1024)*math.Sin(2*phi) +
		(15*e4/256+45*e6/1024)*math.Sin(4*phi) -
		(35*e6/3072)*math.Sin(6*phi))

	x := t.scale*n*(aa+(1-tt+c)*aa*aa*aa/6+
		(5-18*tt+tt*tt+72*c-58*ep2)*math.Pow(aa, 5)/120) + t.falseEasting

	y := t.scale*(m+n*math.Tan(phi)*(aa*aa/2+
		(5-tt+9*c+4*c*c)*math.Pow(aa, 4)/24+
		(61-58*tt+tt*tt+600*c-330*ep2)*math.Pow(aa, 6)/720)) + t.falseNorthing

	return PlanarPoint{X: x, Y: y}
}

// Distance - евклидово расстояние между двумя спроецированными точками, метры
func Distance(a, b PlanarPoint) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}
