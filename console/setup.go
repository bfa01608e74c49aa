package console

import "github.com/trickstertwo/xconsole"

// Init installs an Adapter over DefaultConsole as the global xconsole sink and
// sets the global max level to cfg's level. If a sink is already installed the
// failure is written to the console's error output and Init returns; the
// installed sink is kept.
func Init(cfg Config) {
	InitWith(xconsole.Global(), cfg, DefaultConsole())
}

// InitWith is Init for an explicit Dispatcher and Console.
func InitWith(d *xconsole.Dispatcher, cfg Config, con Console) {
	a := NewAdapter(cfg, con)
	if err := d.SetSink(a); err != nil {
		con.Error(err.Error())
		return
	}
	d.SetMaxLevel(cfg.Level())
}
