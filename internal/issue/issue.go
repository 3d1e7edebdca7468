// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	HostNotSupportedId Id = iota + 1
	BinaryNotFoundId
	PermissionDeniedId
	RevisionUnavailableId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	hostNotSupportedIssue = &Issue{
		id: HostNotSupportedId,
		mdMsg: `
# Platform not supported!

There is no pre-built binary for your operating system and CPU architecture.

## Supported platforms:
- linux/amd64
- linux/arm64
- windows/amd64
- windows/arm64

## Things you can try:
- Run on one of the supported platforms
- Check the ` + "`platforms`" + ` list in your binlaunch.cue, an empty or
  shortened list disables the missing entries`,
	}

	binaryNotFoundIssue = &Issue{
		id: BinaryNotFoundId,
		mdMsg: `
# Binary not found!

The launcher resolved a binary for your platform but the file does not exist.
Binaries are named ` + "`<os>-<arch>-<revision>`" + `, so every new commit needs a
fresh build.

## Things you can try:
- Build the binaries for the current revision into ` + "`_output/bin`" + `
- Check that ` + "`git rev-parse HEAD`" + ` prints the revision you built
- Pin the revision instead of asking git:
~~~
$ BINLAUNCH_VERSION=<revision> binlaunch
~~~`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

The binary exists but could not be executed.

## Things you can try:
- Make the binary executable:
~~~
$ chmod +x _output/bin/<os>-<arch>-<revision>
~~~
- Check that the output directory is not on a ` + "`noexec`" + ` mount`,
	}

	revisionUnavailableIssue = &Issue{
		id: RevisionUnavailableId,
		mdMsg: `
# Could not determine the source revision!

Binary names carry the current git revision, which is read with
` + "`git rev-parse HEAD`" + `.

## Things you can try:
- Run the launcher from inside the repository checkout
- Make sure ` + "`git`" + ` is installed and on your PATH
- Pin the revision through the environment:
~~~
$ BINLAUNCH_VERSION=<revision> binlaunch
~~~
- Or set ` + "`version`" + ` in binlaunch.cue`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

The configuration file could not be read or did not match the schema.

## Things you can try:
- Check the CUE syntax of the file named above
- Remove unknown fields, the schema is closed
- Only these platforms may be listed: ` + "`linux/amd64`, `linux/arm64`, `windows/amd64`, `windows/arm64`" + `
- Point ` + "`BINLAUNCH_CONFIG`" + ` at a different file, or unset it to use defaults`,
	}

	issues = map[Id]*Issue{
		hostNotSupportedIssue.Id():    hostNotSupportedIssue,
		binaryNotFoundIssue.Id():      binaryNotFoundIssue,
		permissionDeniedIssue.Id():    permissionDeniedIssue,
		revisionUnavailableIssue.Id(): revisionUnavailableIssue,
		configLoadFailedIssue.Id():    configLoadFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
