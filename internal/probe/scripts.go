package probe

// ProbeContractVersion identifies the output format of the scripts below.
// Bump it whenever a key or the flags layout changes.
const ProbeContractVersion = 1

// flagsScript prints a single line of compiler and linker flags: include
// directories, the library directory and the interpreter library, followed
// by the build's own LIBS, SYSLIBS and LINKFORSHARED values verbatim.
const flagsScript = `import sys
try:
    import sysconfig
    get = sysconfig.get_config_var
    paths = sysconfig.get_paths()
    includes = [paths.get("include"), paths.get("platinclude")]
except ImportError:
    from distutils import sysconfig
    get = sysconfig.get_config_var
    includes = [sysconfig.get_python_inc(), sysconfig.get_python_inc(plat_specific=True)]
try:
    from shlex import quote
except ImportError:
    from pipes import quote
out = []
for p in includes:
    if p and ("-I" + p) not in out:
        out.append("-I" + p)
libdir = get("LIBDIR")
if libdir:
    out.append("-L" + libdir)
ldversion = get("LDVERSION") or get("VERSION")
if ldversion:
    out.append("-lpython" + ldversion)
out = [quote(t) for t in out]
for key in ("LIBS", "SYSLIBS", "LINKFORSHARED"):
    value = get(key)
    if value:
        out.extend(value.split())
sys.stdout.write(" ".join(out) + "\n")
`

// introspectionScript prints key=value lines describing the interpreter.
const introspectionScript = `import sys, platform, struct
try:
    import sysconfig
    get = sysconfig.get_config_var
except ImportError:
    from distutils import sysconfig
    get = sysconfig.get_config_var
def emit(key, value):
    if value is None:
        value = ""
    sys.stdout.write("%s=%s\n" % (key, value))
v = sys.version_info
version = "%d.%d.%d" % (v[0], v[1], v[2])
if v[3] != "final":
    version += {"alpha": "a", "beta": "b", "candidate": "rc"}.get(v[3], v[3]) + str(v[4])
shared = bool(get("Py_ENABLE_SHARED")) or sys.platform == "win32"
emit("version", version)
emit("abi", getattr(sys, "abiflags", ""))
emit("static", "false" if shared else "true")
emit("implementation", platform.python_implementation())
emit("executable", sys.executable)
emit("libdir", get("LIBDIR"))
emit("base_prefix", getattr(sys, "base_prefix", sys.prefix))
emit("ld_version", get("LDVERSION") or get("py_version_short"))
emit("pointer_size", struct.calcsize("P"))
`

// scriptArgs builds the interpreter arguments for one script. -E ignores
// PYTHON* environment variables that could change the reported layout.
func scriptArgs(script string) []string {
	return []string{"-E", "-c", script}
}
