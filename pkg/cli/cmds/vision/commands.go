package vision

import (
	"github.com/abiosoft/ishell"

	"github.com/robotalks/mazebot/pkg/cli/sh"
)

var (
	// MatrixCmd requests the vision matrix.
	MatrixCmd = ishell.Cmd{
		Name:    "vision.matrix",
		Aliases: []string{"vm"},
		Help:    "",
		Func: func(c *ishell.Context) {
			payload, err := sh.BenchFrom(c).Vision.Matrix()
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("%q\n", payload)
		},
	}

	// IdentificationCmd requests the vision identification.
	IdentificationCmd = ishell.Cmd{
		Name:    "vision.identification",
		Aliases: []string{"vi"},
		Help:    "",
		Func: func(c *ishell.Context) {
			id, err := sh.BenchFrom(c).Vision.Identification()
			if err != nil {
				c.Err(err)
				return
			}
			c.Printf("%q\n", id)
		},
	}

	// ClassifyCmd classifies the obstacle in front.
	ClassifyCmd = ishell.Cmd{
		Name:    "classify",
		Aliases: []string{"cl"},
		Help:    "",
		Func: func(c *ishell.Context) {
			shape, err := sh.BenchFrom(c).Classifier.Run()
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(shape)
		},
	}
)

func init() {
	sh.AddCmds(
		&MatrixCmd,
		&IdentificationCmd,
		&ClassifyCmd,
	)
}
