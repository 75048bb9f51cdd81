package input_test

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"zoomlife/internal/core"
	"zoomlife/internal/input"
	"zoomlife/internal/viewport"
	"zoomlife/internal/world"
)

var _ = Describe("Translate", func() {
	DescribeTable("maps raw events to actions",
		func(ev input.Event, want input.Action) {
			a, ok := input.Translate(ev)
			Expect(ok).To(BeTrue())
			Expect(a).To(Equal(want))
		},
		Entry("quit", input.QuitEvent(), input.Exit{}),
		Entry("primary press", input.PressEvent(12, 34, input.ButtonPrimary), input.ToggleCell{X: 12, Y: 34}),
		Entry("scroll down zooms out", input.PressEvent(0, 0, input.ButtonScrollDown), input.Zoom{Delta: viewport.ZoomStep}),
		Entry("scroll up zooms in", input.PressEvent(0, 0, input.ButtonScrollUp), input.Zoom{Delta: -viewport.ZoomStep}),
		Entry("space", input.KeyEvent(input.KeySpace), input.ToggleRun{}),
		Entry("n", input.KeyEvent(input.KeyN), input.StepOnce{}),
		Entry("c", input.KeyEvent(input.KeyC), input.Clear{}),
		Entry("r", input.KeyEvent(input.KeyR), input.Randomize{}),
		Entry("q", input.KeyEvent(input.KeyQ), input.Exit{}),
		Entry("escape", input.KeyEvent(input.KeyEscape), input.Exit{}),
	)

	DescribeTable("ignores meaningless events",
		func(ev input.Event) {
			_, ok := input.Translate(ev)
			Expect(ok).To(BeFalse())
		},
		Entry("secondary button", input.PressEvent(1, 1, input.ButtonSecondary)),
		Entry("middle button", input.PressEvent(1, 1, input.ButtonMiddle)),
		Entry("unknown key", input.KeyEvent(input.KeyUnknown)),
		Entry("unknown kind", input.Event{Kind: input.EventKind(99)}),
	)
})

var _ = Describe("Controller", func() {
	var (
		s    *world.State
		ctrl *input.Controller
		logs *bytes.Buffer
	)

	BeforeEach(func() {
		var err error
		s, err = world.New(world.Options{WindowWidth: 900, WindowHeight: 600, CellSize: 30, Seed: 1, Density: 0.5})
		Expect(err).NotTo(HaveOccurred())
		logs = &bytes.Buffer{}
		ctrl = input.NewController(log.New(logs, "", 0))
	})

	cell := func(row, col int) uint8 {
		v, err := s.Grid.Get(row, col)
		Expect(err).NotTo(HaveOccurred())
		return v
	}

	Context("quit", func() {
		It("sets the exit flag", func() {
			Expect(ctrl.Drain(s, []input.Event{input.QuitEvent()})).To(Succeed())
			Expect(s.ShouldExit).To(BeTrue())
		})
	})

	Context("primary press", func() {
		It("toggles the cell under the pointer", func() {
			Expect(ctrl.Dispatch(s, input.ToggleCell{X: 65, Y: 31})).To(Succeed())
			Expect(cell(1, 2)).To(Equal(core.Alive))
		})

		It("restores the cell when pressed twice at the same pixel", func() {
			press := input.PressEvent(65, 31, input.ButtonPrimary)
			Expect(ctrl.Drain(s, []input.Event{press, press})).To(Succeed())
			Expect(cell(1, 2)).To(Equal(core.Dead))
		})

		It("works while the simulation is running", func() {
			s.Sim.SetRunning(true)
			Expect(ctrl.Dispatch(s, input.ToggleCell{X: 0, Y: 0})).To(Succeed())
			Expect(cell(0, 0)).To(Equal(core.Alive))
			Expect(s.Sim.IsRunning()).To(BeTrue())
		})

		It("silently ignores presses outside the grid", func() {
			ctrl.Dispatch(s, input.Zoom{Delta: 5 * viewport.ZoomStep}) // 55px cells leave margins
			Expect(ctrl.Dispatch(s, input.ToggleCell{X: 899, Y: 599})).To(Succeed())
			Expect(ctrl.Dispatch(s, input.ToggleCell{X: -3, Y: 10})).To(Succeed())
			Expect(s.Grid.Population()).To(BeZero())
		})
	})

	Context("scroll", func() {
		It("grows cells on scroll down and keeps overlapping content", func() {
			Expect(s.Grid.Set(1, 1, core.Alive)).To(Succeed())
			Expect(ctrl.Drain(s, []input.Event{input.PressEvent(0, 0, input.ButtonScrollDown)})).To(Succeed())
			Expect(s.View.CellSize()).To(Equal(35))
			Expect(s.Grid.Rows).To(Equal(600 / 35))
			Expect(s.Grid.Cols).To(Equal(900 / 35))
			Expect(cell(1, 1)).To(Equal(core.Alive))
			Expect(logs.String()).To(ContainSubstring("cell size 35"))
		})

		It("never shrinks cells below the minimum", func() {
			events := make([]input.Event, 20)
			for i := range events {
				events[i] = input.PressEvent(0, 0, input.ButtonScrollUp)
			}
			Expect(ctrl.Drain(s, events)).To(Succeed())
			Expect(s.View.CellSize()).To(Equal(viewport.MinCellSize))
			Expect(s.Grid.Rows).To(Equal(120))
			Expect(s.Grid.Cols).To(Equal(180))
		})
	})

	Context("run toggle", func() {
		It("flips the running flag without touching cells", func() {
			Expect(s.Grid.Set(3, 3, core.Alive)).To(Succeed())
			Expect(ctrl.Drain(s, []input.Event{input.KeyEvent(input.KeySpace)})).To(Succeed())
			Expect(s.Sim.IsRunning()).To(BeTrue())
			Expect(s.Grid.Population()).To(Equal(1))
			Expect(ctrl.Drain(s, []input.Event{input.KeyEvent(input.KeySpace)})).To(Succeed())
			Expect(s.Sim.IsRunning()).To(BeFalse())
		})
	})

	Context("supplementary keys", func() {
		It("requests a single step", func() {
			Expect(ctrl.Dispatch(s, input.StepOnce{})).To(Succeed())
			Expect(s.Sim.Advance(s.Grid)).To(BeTrue())
			Expect(s.Sim.Advance(s.Grid)).To(BeFalse())
		})

		It("clears and randomizes", func() {
			Expect(ctrl.Dispatch(s, input.Randomize{})).To(Succeed())
			Expect(s.Grid.Population()).To(BeNumerically(">", 0))
			Expect(ctrl.Dispatch(s, input.Clear{})).To(Succeed())
			Expect(s.Grid.Population()).To(BeZero())
		})
	})

	It("skips unknown events in a batch", func() {
		events := []input.Event{
			input.KeyEvent(input.KeyUnknown),
			input.PressEvent(5, 5, input.ButtonSecondary),
			input.PressEvent(5, 5, input.ButtonPrimary),
		}
		Expect(ctrl.Drain(s, events)).To(Succeed())
		Expect(s.Grid.Population()).To(Equal(1))
	})
})

var _ = Describe("Queue", func() {
	It("drains every pending event once", func() {
		var q input.Queue
		q.Push(input.KeyEvent(input.KeySpace))
		q.Push(input.QuitEvent())
		Expect(q.Poll()).To(HaveLen(2))
		Expect(q.Poll()).To(BeEmpty())
	})
})
