package coolprop

// Param identifies a scalar property retrievable from a state or a stateless
// query. The set is closed: unknown tokens are rejected before any native
// call. Tokens match the engine's string API (for example "T", "P", "Hmass").
type Param int

const (
	ParamT Param = iota
	ParamP
	ParamDmolar
	ParamHmolar
	ParamSmolar
	ParamUmolar
	ParamGmolar
	ParamHelmholtzmolar
	ParamDmass
	ParamHmass
	ParamSmass
	ParamUmass
	ParamGmass
	ParamHelmholtzmass
	ParamQ
	ParamDelta
	ParamTau
	ParamCpmolar
	ParamCpmass
	ParamCvmolar
	ParamCvmass
	ParamCp0molar
	ParamCp0mass
	ParamHmolarResidual
	ParamSmolarResidual
	ParamGmolarResidual
	ParamHmolarIdealgas
	ParamSmolarIdealgas
	ParamUmolarIdealgas
	ParamHmassIdealgas
	ParamSmassIdealgas
	ParamUmassIdealgas
	ParamGWP20
	ParamGWP100
	ParamGWP500
	ParamFH
	ParamHH
	ParamPH
	ParamODP
	ParamBvirial
	ParamCvirial
	ParamDBvirialDT
	ParamDCvirialDT
	ParamGasConstant
	ParamMolarMass
	ParamAcentric
	ParamDipoleMoment
	ParamRhomassReducing
	ParamRhomolarReducing
	ParamRhomolarCritical
	ParamRhomassCritical
	ParamTReducing
	ParamTCritical
	ParamTTriple
	ParamTMax
	ParamTMin
	ParamPMin
	ParamPMax
	ParamPCritical
	ParamPReducing
	ParamPTriple
	ParamFractionMin
	ParamFractionMax
	ParamTFreeze
	ParamSpeedOfSound
	ParamViscosity
	ParamConductivity
	ParamSurfaceTension
	ParamPrandtl
	ParamIsothermalCompressibility
	ParamIsobaricExpansionCoefficient
	ParamIsentropicExpansionCoefficient
	ParamZ
	ParamFundamentalDerivativeOfGasDynamics
	ParamPIP
	ParamAlphar
	ParamDalpharDtauConstdelta
	ParamDalpharDdeltaConsttau
	ParamAlpha0
	ParamDalpha0DtauConstdelta
	ParamDalpha0DdeltaConsttau
	ParamD2Alpha0Ddelta2Consttau
	ParamD3Alpha0Ddelta3Consttau
	ParamPhase
	ParamUmolar0
	ParamHmolar0
	ParamSmolar0
	ParamUmass0
	ParamHmass0
	ParamSmass0

	numParams int = iota
)

var paramTokens = [numParams]string{
	ParamT:                                  "T",
	ParamP:                                  "P",
	ParamDmolar:                             "Dmolar",
	ParamHmolar:                             "Hmolar",
	ParamSmolar:                             "Smolar",
	ParamUmolar:                             "Umolar",
	ParamGmolar:                             "Gmolar",
	ParamHelmholtzmolar:                     "Helmholtzmolar",
	ParamDmass:                              "Dmass",
	ParamHmass:                              "Hmass",
	ParamSmass:                              "Smass",
	ParamUmass:                              "Umass",
	ParamGmass:                              "Gmass",
	ParamHelmholtzmass:                      "Helmholtzmass",
	ParamQ:                                  "Q",
	ParamDelta:                              "Delta",
	ParamTau:                                "Tau",
	ParamCpmolar:                            "Cpmolar",
	ParamCpmass:                             "Cpmass",
	ParamCvmolar:                            "Cvmolar",
	ParamCvmass:                             "Cvmass",
	ParamCp0molar:                           "Cp0molar",
	ParamCp0mass:                            "Cp0mass",
	ParamHmolarResidual:                     "Hmolar_residual",
	ParamSmolarResidual:                     "Smolar_residual",
	ParamGmolarResidual:                     "Gmolar_residual",
	ParamHmolarIdealgas:                     "Hmolar_idealgas",
	ParamSmolarIdealgas:                     "Smolar_idealgas",
	ParamUmolarIdealgas:                     "Umolar_idealgas",
	ParamHmassIdealgas:                      "Hmass_idealgas",
	ParamSmassIdealgas:                      "Smass_idealgas",
	ParamUmassIdealgas:                      "Umass_idealgas",
	ParamGWP20:                              "GWP20",
	ParamGWP100:                             "GWP100",
	ParamGWP500:                             "GWP500",
	ParamFH:                                 "FH",
	ParamHH:                                 "HH",
	ParamPH:                                 "PH",
	ParamODP:                                "ODP",
	ParamBvirial:                            "Bvirial",
	ParamCvirial:                            "Cvirial",
	ParamDBvirialDT:                         "dBvirial_dT",
	ParamDCvirialDT:                         "dCvirial_dT",
	ParamGasConstant:                        "gas_constant",
	ParamMolarMass:                          "molar_mass",
	ParamAcentric:                           "acentric",
	ParamDipoleMoment:                       "dipole_moment",
	ParamRhomassReducing:                    "rhomass_reducing",
	ParamRhomolarReducing:                   "rhomolar_reducing",
	ParamRhomolarCritical:                   "rhomolar_critical",
	ParamRhomassCritical:                    "rhomass_critical",
	ParamTReducing:                          "T_reducing",
	ParamTCritical:                          "T_critical",
	ParamTTriple:                            "T_triple",
	ParamTMax:                               "T_max",
	ParamTMin:                               "T_min",
	ParamPMin:                               "P_min",
	ParamPMax:                               "P_max",
	ParamPCritical:                          "p_critical",
	ParamPReducing:                          "p_reducing",
	ParamPTriple:                            "p_triple",
	ParamFractionMin:                        "fraction_min",
	ParamFractionMax:                        "fraction_max",
	ParamTFreeze:                            "T_freeze",
	ParamSpeedOfSound:                       "speed_of_sound",
	ParamViscosity:                          "viscosity",
	ParamConductivity:                       "conductivity",
	ParamSurfaceTension:                     "surface_tension",
	ParamPrandtl:                            "Prandtl",
	ParamIsothermalCompressibility:          "isothermal_compressibility",
	ParamIsobaricExpansionCoefficient:       "isobaric_expansion_coefficient",
	ParamIsentropicExpansionCoefficient:     "isentropic_expansion_coefficient",
	ParamZ:                                  "Z",
	ParamFundamentalDerivativeOfGasDynamics: "fundamental_derivative_of_gas_dynamics",
	ParamPIP:                                "PIP",
	ParamAlphar:                             "alphar",
	ParamDalpharDtauConstdelta:              "dalphar_dtau_constdelta",
	ParamDalpharDdeltaConsttau:              "dalphar_ddelta_consttau",
	ParamAlpha0:                             "alpha0",
	ParamDalpha0DtauConstdelta:              "dalpha0_dtau_constdelta",
	ParamDalpha0DdeltaConsttau:              "dalpha0_ddelta_consttau",
	ParamD2Alpha0Ddelta2Consttau:            "d2alpha0_ddelta2_consttau",
	ParamD3Alpha0Ddelta3Consttau:            "d3alpha0_ddelta3_consttau",
	ParamPhase:                              "Phase",
	ParamUmolar0:                            "Umolar_idealgas",
	ParamHmolar0:                            "Hmolar_idealgas",
	ParamSmolar0:                            "Smolar_idealgas",
	ParamUmass0:                             "Umass_idealgas",
	ParamHmass0:                             "Hmass_idealgas",
	ParamSmass0:                             "Smass_idealgas",
}

// Params lists every known parameter in declaration order.
func Params() []Param {
	out := make([]Param, numParams)
	for i := range out {
		out[i] = Param(i)
	}
	return out
}

func (p Param) valid() bool {
	return p >= 0 && int(p) < numParams
}

// String returns the engine token for the parameter.
func (p Param) String() string {
	if !p.valid() {
		return "Param(invalid)"
	}
	return paramTokens[p]
}

var paramByToken = func() map[string]Param {
	m := make(map[string]Param, numParams)
	for i := numParams - 1; i >= 0; i-- {
		// Reverse order so aliased tokens resolve to the primary variant.
		m[paramTokens[i]] = Param(i)
	}
	return m
}()

// ParamFromString resolves an engine token to a Param. Unknown tokens are a
// KindInvalidInput error and cause no native call.
func ParamFromString(token string) (Param, error) {
	p, ok := paramByToken[token]
	if !ok {
		return 0, errInvalidInput("unknown parameter %q", token)
	}
	return p, nil
}
