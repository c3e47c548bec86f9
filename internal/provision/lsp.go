package provision

// installLanguageServers installs each configured language-server package
// globally, one install invocation per package, in list order. The install
// command typically needs elevated privileges (sudo npm install -g).
func installLanguageServers(ctx *Context) (bool, error) {
	ls := ctx.Cfg.LanguageServers

	for _, pkg := range ls.Packages {
		ctx.Log.Info("Installing language server %s...", pkg)
		if err := ctx.Runner.Run(ls.Install + " " + pkg); err != nil {
			return false, err
		}
	}
	return false, nil
}
