package material_test

import (
	"bytes"
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/rfcalc/internal/logging"
	"github.com/san-kum/rfcalc/internal/material"
	"github.com/san-kum/rfcalc/internal/rf"
)

// telegrapher mirrors tline.Gamma/tline.Z0 without importing tline, which
// depends on this package.
func telegrapher(f, r, l, g, c float64) (gamma, z0 complex128) {
	w := 2 * math.Pi * f
	series := complex(r, w*l)
	shunt := complex(g, w*c)
	return cmplx.Sqrt(series * shunt), cmplx.Sqrt(series / shunt)
}

var _ = Describe("Medium", func() {
	Context("built from the table", func() {
		It("matches the table accessors for every built-in material", func() {
			for _, name := range material.Names() {
				m, err := material.FromName(name)
				Expect(err).NotTo(HaveOccurred())
				Expect(m.Builtin()).To(BeTrue())

				er, _ := material.Dielectric(name)
				eps, _ := material.Permittivity(name, false)
				mu, _ := material.Permeability(name)
				tanD, _ := material.LossTangent(name)
				sigma, _ := material.Conductivity(name)

				Expect(m.RelativePermittivity()).To(Equal(er), name)
				Expect(m.Epsilon()).To(Equal(real(eps)), name)
				Expect(m.Mu()).To(Equal(mu), name)
				Expect(m.LossTangent()).To(Equal(tanD), name)
				Expect(m.Conductivity()).To(Equal(sigma), name)
			}
		})

		It("lets explicit parameters win over the table", func() {
			m, err := material.NewMedium(material.MediumConfig{
				Name:         "Copper",
				Conductivity: material.Param(5e7),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Conductivity()).To(Equal(5e7))
			Expect(m.RelativePermeability()).To(Equal(1.0))
			Expect(m.Builtin()).To(BeTrue())
		})

		It("rejects unknown names in the strict constructor", func() {
			_, err := material.FromName("Unobtainium")
			Expect(err).To(MatchError(rf.ErrUnknownMaterial))
		})
	})

	Context("built from an unrecognized name", func() {
		var buf *bytes.Buffer

		BeforeEach(func() {
			buf = &bytes.Buffer{}
			material.SetLogger(logging.New(logging.Config{Level: "warn", Output: buf}))
		})

		AfterEach(func() {
			material.SetLogger(logging.Noop())
		})

		It("falls back to vacuum defaults and logs the substitution", func() {
			m, err := material.NewMedium(material.MediumConfig{Name: "Unobtainium"})
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Builtin()).To(BeFalse())
			Expect(m.RelativePermittivity()).To(Equal(1.0))
			Expect(m.RelativePermeability()).To(Equal(1.0))
			Expect(m.LossTangent()).To(Equal(0.0))
			Expect(m.Conductivity()).To(Equal(0.0))
			Expect(buf.String()).To(ContainSubstring("Unobtainium"))
		})

		It("stays quiet when every parameter is explicit", func() {
			_, err := material.Explicit("Custom foam", 1.4, 1, 0.0002, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(buf.Len()).To(BeZero())
		})
	})

	Context("parameter validation", func() {
		DescribeTable("rejects out-of-range parameters",
			func(er, ur, tanD, sigma float64) {
				_, err := material.Explicit("bad", er, ur, tanD, sigma)
				Expect(err).To(MatchError(rf.ErrParameterBounds))
			},
			Entry("zero permittivity", 0.0, 1.0, 0.0, 0.0),
			Entry("negative permeability", 1.0, -1.0, 0.0, 0.0),
			Entry("negative loss tangent", 1.0, 1.0, -0.1, 0.0),
			Entry("NaN conductivity", 1.0, 1.0, 0.0, math.NaN()),
		)
	})

	Context("vacuum", func() {
		vac := material.Vacuum()

		It("propagates at the speed of light", func() {
			Expect(vac.PhaseVelocity()).To(BeNumerically("~", rf.C, rf.C*1e-9))
		})

		It("has a 30 cm wavelength at 1 GHz", func() {
			lambda, err := vac.Wavelength(1e9)
			Expect(err).NotTo(HaveOccurred())
			Expect(lambda).To(BeNumerically("~", 0.2998, 1e-4))
		})

		It("has the impedance of free space", func() {
			for _, f := range []float64{0, 1e6, 1e9} {
				eta, err := vac.IntrinsicImpedance(f)
				Expect(err).NotTo(HaveOccurred())
				Expect(real(eta)).To(BeNumerically("~", rf.Eta0, 1e-6))
				Expect(imag(eta)).To(BeNumerically("~", 0, 1e-9))
			}
		})

		It("rejects non-positive wavelength frequencies", func() {
			_, err := vac.Wavelength(0)
			Expect(err).To(MatchError(rf.ErrInvalidFrequency))
			_, err = vac.Wavelength(-1e6)
			Expect(err).To(MatchError(rf.ErrInvalidFrequency))
		})
	})

	Context("copper", func() {
		var cu material.Medium

		BeforeEach(func() {
			var err error
			cu, err = material.FromName("Copper")
			Expect(err).NotTo(HaveOccurred())
		})

		It("has a skin depth of about 2.09 um at 1 GHz", func() {
			delta, err := cu.SkinDepth(1e9)
			Expect(err).NotTo(HaveOccurred())
			Expect(delta).To(BeNumerically("~", 2.0874686892e-6, 1e-14))
		})

		It("has attenuation equal to the inverse skin depth", func() {
			alpha, err := cu.AttenuationConstant(1e9)
			Expect(err).NotTo(HaveOccurred())
			delta, _ := cu.SkinDepth(1e9)
			Expect(alpha * delta).To(BeNumerically("~", 1, 1e-6))
		})

		It("has surface resistance of about 8.24 mOhm at 1 GHz", func() {
			rs, err := cu.SurfaceResistance(1e9)
			Expect(err).NotTo(HaveOccurred())
			Expect(rs).To(BeNumerically("~", 8.240996e-3, 1e-8))
		})

		It("has a surface impedance with equal real and imaginary parts", func() {
			eta, err := cu.IntrinsicImpedance(1e9)
			Expect(err).NotTo(HaveOccurred())
			rs, _ := cu.SurfaceResistance(1e9)
			Expect(real(eta)).To(BeNumerically("~", rs, rs*1e-6))
			Expect(imag(eta)).To(BeNumerically("~", rs, rs*1e-6))
		})
	})

	Context("dielectric boundaries", func() {
		teflon, _ := material.FromName("Teflon")

		It("refuses conductor-only quantities", func() {
			_, err := teflon.SkinDepth(1e9)
			Expect(err).To(MatchError(rf.ErrUndefinedQuantity))
			_, err = teflon.SurfaceResistance(1e9)
			Expect(err).To(MatchError(rf.ErrUndefinedQuantity))
			_, err = teflon.ComplexPermittivity(1e9, true)
			Expect(err).To(MatchError(rf.ErrUndefinedQuantity))
		})

		It("rejects non-positive skin depth frequencies before checking conductivity", func() {
			cu, _ := material.FromName("Copper")
			_, err := cu.SkinDepth(0)
			Expect(err).To(MatchError(rf.ErrInvalidFrequency))
		})

		It("applies the loss tangent to the complex permittivity", func() {
			eps, err := teflon.ComplexPermittivity(1e9, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(real(eps)).To(Equal(teflon.Epsilon()))
			Expect(imag(eps)).To(Equal(teflon.Epsilon() * 0.0004))

			eps0, err := teflon.ComplexPermittivity(0, true)
			Expect(err).NotTo(HaveOccurred())
			Expect(eps0).To(Equal(complex(teflon.Epsilon(), 0)))
		})

		It("is lossless in the propagation constant", func() {
			gamma, err := teflon.PropagationConstant(1e9)
			Expect(err).NotTo(HaveOccurred())
			Expect(real(gamma)).To(BeNumerically("~", 0, 1e-12))
			Expect(imag(gamma)).To(BeNumerically("~", 30.2267067684, 1e-8))
		})
	})

	Context("consistency", func() {
		frequencies := []float64{1e3, 1e6, 1e9, 1e11}

		It("splits gamma into attenuation and phase exactly", func() {
			for _, name := range material.Names() {
				m, _ := material.FromName(name)
				for _, f := range frequencies {
					gamma, err := m.PropagationConstant(f)
					Expect(err).NotTo(HaveOccurred())
					alpha, _ := m.AttenuationConstant(f)
					beta, _ := m.PhaseConstant(f)
					Expect(alpha).To(Equal(real(gamma)))
					Expect(beta).To(Equal(imag(gamma)))
				}
			}
		})

		It("reproduces gamma and eta through the RLGC view", func() {
			for _, name := range []string{"Vacuum", "Teflon", "Water", "Copper", "Iron", "Germanium"} {
				m, _ := material.FromName(name)
				r, l, g, c := m.EquivalentRLGC()
				for _, f := range frequencies {
					gamma, _ := m.PropagationConstant(f)
					eta, _ := m.IntrinsicImpedance(f)
					tg, tz := telegrapher(f, r, l, g, c)
					Expect(cmplx.Abs(tg-gamma)).To(BeNumerically("<=", 1e-9*cmplx.Abs(gamma)), name)
					Expect(cmplx.Abs(tz-eta)).To(BeNumerically("<=", 1e-9*cmplx.Abs(eta)), name)
				}
			}
		})

		It("returns bit-identical results on repeated calls", func() {
			m, _ := material.FromName("Nickel")
			g1, _ := m.PropagationConstant(2.4e9)
			g2, _ := m.PropagationConstant(2.4e9)
			Expect(g1).To(Equal(g2))
			e1, _ := m.IntrinsicImpedance(2.4e9)
			e2, _ := m.IntrinsicImpedance(2.4e9)
			Expect(e1).To(Equal(e2))
		})

		It("agrees with the name-keyed forms", func() {
			for _, name := range material.Names() {
				m, _ := material.FromName(name)
				f := 1e9

				gamma, _ := material.PropagationConstant(name, f)
				want, _ := m.PropagationConstant(f)
				Expect(gamma).To(Equal(want))

				eta, _ := material.IntrinsicImpedance(name, f)
				wantEta, _ := m.IntrinsicImpedance(f)
				Expect(eta).To(Equal(wantEta))

				alpha, _ := material.AttenuationConstant(name, f)
				wantAlpha, _ := m.AttenuationConstant(f)
				Expect(alpha).To(Equal(wantAlpha))

				beta, _ := material.PhaseConstant(name, f)
				wantBeta, _ := m.PhaseConstant(f)
				Expect(beta).To(Equal(wantBeta))

				vp, _ := material.PhaseVelocity(name)
				Expect(vp).To(Equal(m.PhaseVelocity()))

				lambda, _ := material.Wavelength(name, f)
				wantLambda, _ := m.Wavelength(f)
				Expect(lambda).To(Equal(wantLambda))

				eps, errA := material.ComplexPermittivityOf(name, f, false)
				wantEps, errB := m.ComplexPermittivity(f, false)
				Expect(eps).To(Equal(wantEps))
				Expect(errA == nil).To(Equal(errB == nil))

				delta, errA := material.SkinDepth(name, f)
				wantDelta, errB := m.SkinDepth(f)
				Expect(delta).To(Equal(wantDelta))
				Expect(errA == nil).To(Equal(errB == nil))

				rs, errA := material.SurfaceResistance(name, f)
				wantRs, errB := m.SurfaceResistance(f)
				Expect(rs).To(Equal(wantRs))
				Expect(errA == nil).To(Equal(errB == nil))
			}
		})

		It("reports unknown names from the name-keyed forms", func() {
			_, err := material.SkinDepth("Kryptonite", 1e9)
			Expect(err).To(MatchError(rf.ErrUnknownMaterial))
			_, err = material.PhaseVelocity("Kryptonite")
			Expect(err).To(MatchError(rf.ErrUnknownMaterial))
		})
	})
})
