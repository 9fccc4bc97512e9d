package turtle_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kdraman/dotgrid/internal/braille"
	"github.com/kdraman/dotgrid/internal/turtle"
)

var _ = Describe("Turtle", func() {
	var t *turtle.Turtle

	BeforeEach(func() {
		t = turtle.New(20, 20)
	})

	It("starts with the pen down, facing right", func() {
		Expect(t.Pen()).To(BeTrue())
		Expect(t.Rotation).To(BeZero())
	})

	Describe("movement", func() {
		It("returns to the start after forward then back", func() {
			t.Right(33)
			t.Forward(12.5)
			t.Back(12.5)
			Expect(t.X).To(BeNumerically("~", 20, 1e-9))
			Expect(t.Y).To(BeNumerically("~", 20, 1e-9))
		})

		It("restores the heading after right then left", func() {
			t.Right(123.25)
			t.Left(123.25)
			Expect(t.Rotation).To(Equal(0.0))
		})

		It("accumulates heading without normalization", func() {
			t.Right(720)
			t.Right(90)
			Expect(t.Rotation).To(Equal(810.0))
		})

		It("draws along a forward move", func() {
			t.Forward(10)
			Expect(t.Canvas().Get(25, 20)).To(BeTrue())
			Expect(t.Canvas().Get(30, 20)).To(BeTrue())
		})

		It("tracks position even with the pen up", func() {
			t.Up()
			t.Teleport(40, 8)
			Expect(t.X).To(Equal(40.0))
			Expect(t.Y).To(Equal(8.0))
		})

		It("keeps negative positions while clamping the drawing", func() {
			t.Up()
			t.Teleport(-5, -5)
			Expect(t.X).To(Equal(-5.0))
			Expect(t.Y).To(Equal(-5.0))

			t.Down()
			t.Teleport(3, 0)
			Expect(t.Canvas().Get(0, 0)).To(BeTrue())
			Expect(t.Canvas().Get(3, 0)).To(BeTrue())
		})
	})

	Describe("pen", func() {
		It("does not draw while up", func() {
			t.Up()
			before := t.Frame()
			t.Forward(15)
			Expect(t.Frame()).To(Equal(before))
		})

		It("toggles", func() {
			t.Toggle()
			Expect(t.Pen()).To(BeFalse())
			t.Toggle()
			Expect(t.Pen()).To(BeTrue())
		})
	})

	Describe("color", func() {
		It("colors strokes until the brush is cleaned", func() {
			t.Color(braille.Red)
			t.Forward(4)
			Expect(t.Frame()).To(ContainSubstring("\x1b[31m"))

			t.CleanBrush()
			t.Up()
			t.Teleport(0, 40)
			t.Down()
			t.Forward(4)
			rows := t.Canvas().Rows()
			Expect(rows[10]).NotTo(ContainSubstring("\x1b["))
		})
	})

	It("draws on a caller-supplied canvas", func() {
		cvs := braille.New(40, 40)
		tt := turtle.OnCanvas(0, 0, cvs)
		tt.Teleport(8, 0)
		Expect(cvs.Get(4, 0)).To(BeTrue())
	})
})
