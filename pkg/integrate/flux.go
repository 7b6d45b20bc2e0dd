package integrate

import (
	"gonum.org/v1/gonum/floats"

	"github.com/icelab/goqms/pkg/qms"
)

// minFluxSamples is the window floor for flux integration. No baseline fit
// is involved, so two samples suffice (trapezoid).
const minFluxSamples = 2

// PhotonFlux integrates the measured photon current scaled to a flux unit.
// The window is given in minutes and converted to seconds once. No baseline
// is subtracted: the flux trace starts from a true zero. Missing columns are
// a hard precondition failure naming every absent key; there is no partial
// result.
func (it *Integrator) PhotonFlux(tbl *qms.Table, timeKey, photonKey string, scale float64, w Window) (float64, error) {
	var missing []string
	if !tbl.Has(timeKey) {
		missing = append(missing, timeKey)
	}
	if !tbl.Has(photonKey) {
		missing = append(missing, photonKey)
	}
	if len(missing) > 0 {
		return 0, &qms.MissingColumnError{Columns: missing}
	}

	t, _ := tbl.Column(timeKey)
	photon, _ := tbl.Column(photonKey)

	flux := make([]float64, len(photon))
	floats.ScaleTo(flux, scale, photon)

	res, err := it.signal(t, flux, w.MinutesToSeconds(), false, minFluxSamples, "photon_flux")
	if err != nil {
		return 0, err
	}
	return res.Area, nil
}
