package pinchzoom

import "testing"

func TestMultiplyAffineOrder(t *testing.T) {
	// Scale first, then translate.
	m := multiplyAffine(translateAffine(10, 20), scaleAffine(2))
	x, y := transformPoint(m, 1, 1)
	if !approxEqual(x, 12, epsilon) || !approxEqual(y, 22, epsilon) {
		t.Errorf("got (%v,%v), want (12,22)", x, y)
	}
}

func TestInvertAffine(t *testing.T) {
	m := multiplyAffine(translateAffine(-7, 3), scaleAffine(4))
	inv := invertAffine(m)
	id := multiplyAffine(m, inv)
	for i, want := range identityTransform {
		if !approxEqual(id[i], want, 1e-9) {
			t.Errorf("m*inv[%d] = %v, want %v", i, id[i], want)
		}
	}
}

func TestInvertAffineSingular(t *testing.T) {
	if got := invertAffine(scaleAffine(0)); got != identityTransform {
		t.Errorf("invertAffine(singular) = %v, want identity", got)
	}
}
